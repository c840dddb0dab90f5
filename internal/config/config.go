// Package config holds the static configuration surface for the lobby dashboard.
package config

import (
	"os"
	"strconv"
	"time"
)

// Default data source endpoints and identifiers. These match the deployed
// lobby screen; changing any of them means redeploying the artifact.
const (
	DefaultBikeFeedURL = "https://gbfs.lyft.com/gbfs/2.3/bos/en/station_status.json"
	DefaultMenuURL     = "https://lobbyboard.github.io/menu/menu.json"
	DefaultWeatherURL  = "https://api.openweathermap.org/data/2.5"

	DefaultStationA = "f8340518-27b8-4a63-bdfc-35a52e83d6bc"
	DefaultStationB = "177ee882-2b27-4e38-b4a3-4b5db9d67b29"

	DefaultLatitude  = 42.3954
	DefaultLongitude = -71.1424
)

// Config is the immutable configuration for the dashboard process. It is
// built once at startup and passed by value to every component.
type Config struct {
	// Port is the HTTP listen port for the display surface.
	Port string

	// BikeFeedURL is the GBFS station_status feed.
	BikeFeedURL string

	// StationIDs are the two bike-share stations shown on the board,
	// in display order.
	StationIDs []string

	// MenuURL is the cafe menu document (weekday-keyed JSON).
	MenuURL string

	// WeatherBaseURL is the weather provider API base URL.
	WeatherBaseURL string

	// WeatherAPIKey authenticates against the weather provider.
	WeatherAPIKey string

	// Latitude and Longitude select the weather location.
	Latitude  float64
	Longitude float64

	// Poll cadences. Each interval is measured from the end of the
	// previous cycle, so a slow fetch pushes back the next one.
	ClockInterval   time.Duration
	BikeInterval    time.Duration
	WeatherInterval time.Duration
}

// FromEnv creates a Config from environment variables, falling back to the
// deployed defaults for anything unset.
func FromEnv() Config {
	lat := getFloatOrDefault("BOARD_LAT", DefaultLatitude)
	lon := getFloatOrDefault("BOARD_LON", DefaultLongitude)

	return Config{
		Port:            getEnvOrDefault("APP_PORT", "8080"),
		BikeFeedURL:     getEnvOrDefault("BIKE_FEED_URL", DefaultBikeFeedURL),
		StationIDs:      []string{getEnvOrDefault("BIKE_STATION_A", DefaultStationA), getEnvOrDefault("BIKE_STATION_B", DefaultStationB)},
		MenuURL:         getEnvOrDefault("MENU_URL", DefaultMenuURL),
		WeatherBaseURL:  getEnvOrDefault("WEATHER_BASE_URL", DefaultWeatherURL),
		WeatherAPIKey:   os.Getenv("WEATHER_API_KEY"),
		Latitude:        lat,
		Longitude:       lon,
		ClockInterval:   time.Second,
		BikeInterval:    60 * time.Second,
		WeatherInterval: 600 * time.Second,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
