package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/leadflowbr/leadflow_end/models"
)

// CheckoutClient payment-gateway client that creates checkout sessions.
type CheckoutClient struct {
	baseURL    string
	apiKey     string
	successURL string
	client     *http.Client
}

// NewCheckoutClient wires the gateway credentials.
func NewCheckoutClient(baseURL, apiKey, successURL string, client *http.Client) *CheckoutClient {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &CheckoutClient{baseURL: baseURL, apiKey: apiKey, successURL: successURL, client: client}
}

type checkoutSessionRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Reference  string  `json:"reference"`
	SuccessURL string  `json:"successUrl"`
	CustomerID string  `json:"customerId"`
}

type checkoutSessionResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// CreateSession asks the gateway for a checkout redirect URL. The reference
// doubles as an idempotency key.
func (cc *CheckoutClient) CreateSession(ctx context.Context, userID string, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if cc.apiKey == "" {
		return nil, fmt.Errorf("checkout is not configured")
	}

	currency := req.Currency
	if currency == "" {
		currency = "BRL"
	}

	payload := checkoutSessionRequest{
		Amount:     req.Amount,
		Currency:   currency,
		Reference:  uuid.NewString(),
		SuccessURL: cc.successURL,
		CustomerID: userID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal checkout payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, cc.baseURL+"/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+cc.apiKey)
	httpReq.Header.Set("Idempotency-Key", payload.Reference)

	resp, err := cc.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("checkout request: %w", err)
	}
	defer resp.Body.Close()

	var decoded checkoutSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode checkout response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if decoded.Error != "" {
			return nil, fmt.Errorf("checkout rejected: %s", decoded.Error)
		}
		return nil, fmt.Errorf("checkout returned %s", resp.Status)
	}

	if decoded.URL == "" {
		return nil, fmt.Errorf("checkout response missing redirect url")
	}

	return &models.CheckoutResponse{URL: decoded.URL}, nil
}
