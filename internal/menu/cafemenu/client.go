// Package cafemenu provides a client for the cafe's published menu document.
package cafemenu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lobbyboard/lobbyboard/internal/menu"
	"github.com/lobbyboard/lobbyboard/internal/provider/resilience"
)

// ProviderName identifies this provider.
const ProviderName = "cafemenu"

// ClientConfig holds configuration for the cafe menu client.
type ClientConfig struct {
	// URL is the full URL of the menu document (required).
	URL string

	// HTTPClient is the HTTP client to use (must implement HTTPDoer).
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the weekday-keyed menu document.
type Client struct {
	url        string
	httpClient HTTPDoer
}

// NewClient creates a new cafe menu client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		url:        cfg.URL,
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// FetchMenu retrieves and decodes the full menu document.
func (c *Client) FetchMenu(ctx context.Context) (menu.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var doc menu.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decoding menu document: %w", err)
	}

	return doc, nil
}
