package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowbr/leadflow_end/models"
)

func TestCheckoutCreatesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer gw-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 49.0, payload["amount"])
		assert.Equal(t, "BRL", payload["currency"])
		assert.Equal(t, "user-1", payload["customerId"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"url": "https://pay.example/s/abc"}`))
	}))
	defer srv.Close()

	cc := NewCheckoutClient(srv.URL, "gw-key", "https://app.example/ok", srv.Client())

	resp, err := cc.CreateSession(context.Background(), "user-1", models.CheckoutRequest{Amount: 49})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/s/abc", resp.URL)
}

func TestCheckoutSurfacesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error": "card declined"}`))
	}))
	defer srv.Close()

	cc := NewCheckoutClient(srv.URL, "gw-key", "", srv.Client())

	_, err := cc.CreateSession(context.Background(), "user-1", models.CheckoutRequest{Amount: 49})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card declined")
}

func TestCheckoutRequiresConfiguration(t *testing.T) {
	cc := NewCheckoutClient("https://gw.example", "", "", nil)
	_, err := cc.CreateSession(context.Background(), "user-1", models.CheckoutRequest{Amount: 49})
	assert.Error(t, err)
}
