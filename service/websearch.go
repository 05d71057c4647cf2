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

const customSearchBaseURL = "https://www.googleapis.com/customsearch/v1"

// WebSearchClient Google Custom Search client for generic web prospecting.
type WebSearchClient struct {
	apiKey   string
	engineID string
	baseURL  string
	client   *http.Client
}

// NewWebSearchClient wires the Custom Search credentials.
func NewWebSearchClient(apiKey, engineID string, client *http.Client) *WebSearchClient {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &WebSearchClient{apiKey: apiKey, engineID: engineID, baseURL: customSearchBaseURL, client: client}
}

type customSearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Search runs a web search; results carry link, description and the derived
// source hostname on top of the common shape.
func (w *WebSearchClient) Search(ctx context.Context, query, location string) ([]models.SearchResult, error) {
	if w.apiKey == "" || w.engineID == "" {
		return nil, fmt.Errorf("web search is not configured")
	}

	q := query
	if location != "" {
		q = query + " " + location
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("key", w.apiKey)
	params.Set("cx", w.engineID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search request: %w", err)
	}
	defer resp.Body.Close()

	var decoded customSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if decoded.Error != nil {
		return nil, fmt.Errorf("web search error: %s", decoded.Error.Message)
	}

	results := make([]models.SearchResult, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		results = append(results, models.SearchResult{
			CompanyName: item.Title,
			Link:        item.Link,
			Website:     item.Link,
			Description: item.Snippet,
			Source:      hostnameOf(item.Link),
		})
	}

	return results, nil
}

func hostnameOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
