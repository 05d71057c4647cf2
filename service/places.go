package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/leadflowbr/leadflow_end/models"
)

const placesBaseURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// PlacesClient Google Places text-search client.
type PlacesClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewPlacesClient wires the Places API key; baseURL override is for tests.
func NewPlacesClient(apiKey string, client *http.Client) *PlacesClient {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &PlacesClient{apiKey: apiKey, baseURL: placesBaseURL, client: client}
}

// placesResponse wire shape of the text-search endpoint, reduced to the
// fields the prospecting flow consumes.
type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		FormattedPhone   string  `json:"formatted_phone_number"`
		Website          string  `json:"website"`
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

// Search runs a text search, optionally biased by location.
func (p *PlacesClient) Search(ctx context.Context, query, location string) ([]models.SearchResult, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("places search is not configured")
	}

	q := query
	if location != "" {
		q = query + " in " + location
	}

	params := url.Values{}
	params.Set("query", q)
	params.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places returned %s", resp.Status)
	}

	var decoded placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	if decoded.Status != "OK" && decoded.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	results := make([]models.SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, models.SearchResult{
			CompanyName:      r.Name,
			Address:          r.FormattedAddress,
			Phone:            r.FormattedPhone,
			Website:          r.Website,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
		})
	}

	return results, nil
}
