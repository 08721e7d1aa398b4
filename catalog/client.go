package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"distrohub/config"
	"distrohub/model"
)

// ErrInvalidResponse indicates the endpoint answered 200 but the body did not
// carry a valid catalog envelope (success flag false or data not a list).
var ErrInvalidResponse = errors.New("invalid catalog response format")

// Client fetches the full release catalog from the remote read endpoint.
// There is no caching layer: every Fetch re-reads the complete set, which is
// acceptable at the expected catalog size.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a catalog client from injected configuration.
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.CatalogTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.CatalogAPIURL,
		apiKey:  cfg.CatalogAPIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Reconfigure swaps the endpoint and credential, e.g. after a config reload.
func (c *Client) Reconfigure(cfg *config.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = cfg.CatalogAPIURL
	c.apiKey = cfg.CatalogAPIKey
}

// Fetch performs one network call and returns every release with its nested
// tracks. Any failure is a FetchError condition: the caller should fall back
// to an empty list plus a user-visible message.
func (c *Client) Fetch(ctx context.Context) ([]model.CatalogRelease, error) {
	c.mu.RLock()
	baseURL, apiKey := c.baseURL, c.apiKey
	c.mu.RUnlock()

	if baseURL == "" {
		return nil, errors.New("catalog API URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("apikey", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
	}

	var envelope model.CatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	if !envelope.Success || envelope.Data == nil {
		return nil, ErrInvalidResponse
	}

	return envelope.Data, nil
}
