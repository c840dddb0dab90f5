// Package weather provides current weather data and condition
// classification for the board's theming.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrProviderUnavailable indicates the weather API could not be fetched
// or decoded.
var ErrProviderUnavailable = errors.New("weather provider unavailable")

// ProviderError is a well-formed provider response that explicitly signals
// an error (a body status code other than 200).
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weather provider error %d: %s", e.Code, e.Message)
}

// Provider defines the interface for weather data providers.
type Provider interface {
	// GetCurrentWeather fetches the current weather for a location.
	GetCurrentWeather(ctx context.Context, lat, lon float64) (*Observation, error)

	// Name returns the provider name for logging.
	Name() string
}

// Observation is the current weather at the configured location.
type Observation struct {
	// Condition is the provider's short textual classification of current
	// conditions ("Rain", "Clear", "Heavy Thunderstorm", ...).
	Condition string

	// Temperature and FeelsLike in Celsius.
	Temperature float64
	FeelsLike   float64

	// Humidity percentage (0-100).
	Humidity int

	// WindSpeed in m/s.
	WindSpeed float64

	FetchedAt time.Time
}

// Category is the board's classification of a condition label. It drives
// both the icon and the background theme.
type Category string

const (
	CategoryClear        Category = "CLEAR"
	CategoryClouds       Category = "CLOUDS"
	CategoryRain         Category = "RAIN"
	CategorySnow         Category = "SNOW"
	CategoryThunderstorm Category = "THUNDERSTORM"
	CategoryUnknown      Category = "UNKNOWN"
)

// classificationRules is the ordered, case-insensitive substring ruleset.
// Order is a documented contract: rules are evaluated top to bottom and the
// first match wins, so a label containing several keywords resolves to the
// earliest rule ("Thundery Rain" is rain, "Heavy Thunderstorm" is
// thunderstorm).
var classificationRules = []struct {
	substrings []string
	category   Category
}{
	{[]string{"clear"}, CategoryClear},
	{[]string{"cloud"}, CategoryClouds},
	{[]string{"rain", "drizzle"}, CategoryRain},
	{[]string{"snow"}, CategorySnow},
	{[]string{"thunder"}, CategoryThunderstorm},
}

// Classify maps a condition label to a Category. Labels matching no rule
// ("Tornado", "Mist") classify as CategoryUnknown.
func Classify(condition string) Category {
	lower := strings.ToLower(condition)
	for _, rule := range classificationRules {
		for _, substr := range rule.substrings {
			if strings.Contains(lower, substr) {
				return rule.category
			}
		}
	}
	return CategoryUnknown
}
