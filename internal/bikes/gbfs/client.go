// Package gbfs provides a client for GBFS station_status feeds.
package gbfs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lobbyboard/lobbyboard/internal/bikes"
	"github.com/lobbyboard/lobbyboard/internal/provider/resilience"
)

// ProviderName identifies this provider.
const ProviderName = "gbfs"

// ClientConfig holds configuration for the GBFS client.
type ClientConfig struct {
	// FeedURL is the full URL of the station_status document (required).
	FeedURL string

	// HTTPClient is the HTTP client to use (must implement HTTPDoer).
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a GBFS station_status client.
type Client struct {
	feedURL    string
	httpClient HTTPDoer
}

// NewClient creates a new GBFS client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		feedURL:    cfg.FeedURL,
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Feed response types (GBFS 2.x station_status).

type stationStatusResponse struct {
	Data struct {
		Stations []stationStatusData `json:"stations"`
	} `json:"data"`
}

type stationStatusData struct {
	StationID          string `json:"station_id"`
	NumBikesAvailable  int    `json:"num_bikes_available"`
	NumDocksAvailable  int    `json:"num_docks_available"`
	NumBikesDisabled   int    `json:"num_bikes_disabled"`
	NumDocksDisabled   int    `json:"num_docks_disabled"`
	IsInstalled        bool   `json:"is_installed"`
	IsRenting          bool   `json:"is_renting"`
	IsReturning        bool   `json:"is_returning"`
	LastReported       int64  `json:"last_reported"`
}

// FetchStationStatuses retrieves the current status of every station in
// the feed.
func (c *Client) FetchStationStatuses(ctx context.Context) ([]bikes.StationStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, http.NoBody)
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

	var feed stationStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	statuses := make([]bikes.StationStatus, 0, len(feed.Data.Stations))
	for _, s := range feed.Data.Stations {
		statuses = append(statuses, bikes.StationStatus{
			StationID:      s.StationID,
			BikesAvailable: s.NumBikesAvailable,
			DocksAvailable: s.NumDocksAvailable,
		})
	}

	return statuses, nil
}
