package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesSearchMapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "padaria in São Paulo", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"name": "Padaria Estrela",
				"formatted_address": "Rua A, 123, São Paulo",
				"formatted_phone_number": "(11) 3456-7890",
				"website": "https://padariaestrela.com.br",
				"rating": 4.6,
				"user_ratings_total": 321
			}]
		}`))
	}))
	defer srv.Close()

	p := NewPlacesClient("test-key", srv.Client())
	p.baseURL = srv.URL

	results, err := p.Search(context.Background(), "padaria", "São Paulo")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Padaria Estrela", results[0].CompanyName)
	assert.Equal(t, "Rua A, 123, São Paulo", results[0].Address)
	assert.Equal(t, 4.6, results[0].Rating)
	assert.Equal(t, 321, results[0].UserRatingsTotal)
}

func TestPlacesSearchSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key"}`))
	}))
	defer srv.Close()

	p := NewPlacesClient("test-key", srv.Client())
	p.baseURL = srv.URL

	_, err := p.Search(context.Background(), "padaria", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestPlacesSearchRequiresConfiguration(t *testing.T) {
	p := NewPlacesClient("", nil)
	_, err := p.Search(context.Background(), "padaria", "")
	assert.Error(t, err)
}

func TestWebSearchDerivesSourceHostname(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cx-id", r.URL.Query().Get("cx"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{
				"title": "Globex — Industrial Automation",
				"link": "https://www.globex.example/about",
				"snippet": "Automation solutions for factories."
			}]
		}`))
	}))
	defer srv.Close()

	w := NewWebSearchClient("key", "cx-id", srv.Client())
	w.baseURL = srv.URL

	results, err := w.Search(context.Background(), "automation", "")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "www.globex.example", results[0].Source)
	assert.Equal(t, "https://www.globex.example/about", results[0].Link)
	assert.Equal(t, "Automation solutions for factories.", results[0].Description)
}

func TestWebSearchSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer srv.Close()

	w := NewWebSearchClient("key", "cx-id", srv.Client())
	w.baseURL = srv.URL

	_, err := w.Search(context.Background(), "automation", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
