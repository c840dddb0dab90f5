package bikes

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Provider defines the interface for station availability feeds.
type Provider interface {
	// FetchStationStatuses fetches the current status of every station
	// in the feed.
	FetchStationStatuses(ctx context.Context) ([]StationStatus, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the bike service.
type ServiceConfig struct {
	// Provider is the station feed provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service resolves individual station availability from a station feed.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new bike service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// GetStation fetches the feed and returns the status of a single station.
// Returns ErrStationNotFound if the feed does not contain stationID.
func (s *Service) GetStation(ctx context.Context, stationID string) (*StationStatus, error) {
	statuses, err := s.provider.FetchStationStatuses(ctx)
	if err != nil {
		s.logger.Error().Err(err).
			Str("provider", s.provider.Name()).
			Str("station_id", stationID).
			Msg("failed to fetch station feed")
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	for i := range statuses {
		if statuses[i].StationID == stationID {
			return &statuses[i], nil
		}
	}

	s.logger.Warn().
		Str("provider", s.provider.Name()).
		Str("station_id", stationID).
		Int("stations_in_feed", len(statuses)).
		Msg("station missing from feed")
	return nil, fmt.Errorf("station %q: %w", stationID, ErrStationNotFound)
}

// IsNotFound reports whether err is a station-not-found outcome rather than
// a feed failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStationNotFound)
}
