package menu

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Provider defines the interface for menu document sources.
type Provider interface {
	// FetchMenu fetches the full weekday-keyed menu document.
	FetchMenu(ctx context.Context) (Document, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the menu service.
type ServiceConfig struct {
	// Provider is the menu document source.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service selects the menu for a given weekday from the menu document.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new menu service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// ForDay fetches the menu document and returns the entry for the given
// weekday name ("Monday".."Sunday"). Returns ErrNoMenuForDay when the
// document has no entry for that weekday (the cafe publishes weekdays
// only, so Saturday and Sunday always take this path).
func (s *Service) ForDay(ctx context.Context, weekday string) (Day, error) {
	doc, err := s.provider.FetchMenu(ctx)
	if err != nil {
		s.logger.Error().Err(err).
			Str("provider", s.provider.Name()).
			Msg("failed to fetch menu document")
		return nil, fmt.Errorf("%w: %w", ErrMenuUnavailable, err)
	}

	day, ok := doc[weekday]
	if !ok {
		s.logger.Info().
			Str("provider", s.provider.Name()).
			Str("weekday", weekday).
			Msg("menu document has no entry for weekday")
		return nil, fmt.Errorf("%q: %w", weekday, ErrNoMenuForDay)
	}

	return day, nil
}
