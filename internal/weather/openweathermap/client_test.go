package openweathermap_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobbyboard/lobbyboard/internal/weather"
	"github.com/lobbyboard/lobbyboard/internal/weather/openweathermap"
)

func TestClient_GetCurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "42.395400", r.URL.Query().Get("lat"))
		assert.Equal(t, "-71.142400", r.URL.Query().Get("lon"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cod": 200,
			"weather": [{"id": 500, "main": "Rain", "description": "light rain"}],
			"main": {"temp": 15.6, "feels_like": 14.2, "humidity": 80},
			"wind": {"speed": 3.4},
			"dt": 1700000000
		}`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	obs, err := client.GetCurrentWeather(context.Background(), 42.3954, -71.1424)
	require.NoError(t, err)

	assert.Equal(t, "Rain", obs.Condition)
	assert.Equal(t, 15.6, obs.Temperature)
	assert.Equal(t, 14.2, obs.FeelsLike)
	assert.Equal(t, 80, obs.Humidity)
	assert.Equal(t, 3.4, obs.WindSpeed)
	assert.False(t, obs.FetchedAt.IsZero())
}

func TestClient_GetCurrentWeather_BodyCodError(t *testing.T) {
	// Provider errors come back as well-formed JSON with a body status
	// code, sometimes on a transport-level 200.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "bad-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.GetCurrentWeather(context.Background(), 42.3954, -71.1424)
	require.Error(t, err)

	var provErr *weather.ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, 401, provErr.Code)
	assert.Equal(t, "Invalid API key", provErr.Message)
}

func TestClient_GetCurrentWeather_MissingConditionArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cod": 200,
			"weather": [],
			"main": {"temp": 10.0, "feels_like": 9.0, "humidity": 50},
			"wind": {"speed": 2.0}
		}`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	obs, err := client.GetCurrentWeather(context.Background(), 42.0, -71.0)
	require.NoError(t, err)
	assert.Empty(t, obs.Condition)
}

func TestClient_GetCurrentWeather_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.GetCurrentWeather(context.Background(), 42.0, -71.0)
	require.Error(t, err)
}

func TestClient_GetCurrentWeather_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetCurrentWeather(ctx, 42.0, -71.0)
	require.Error(t, err)
}

func TestClient_Name(t *testing.T) {
	client := openweathermap.NewClient(openweathermap.ClientConfig{APIKey: "test-key"})
	assert.Equal(t, openweathermap.ProviderName, client.Name())
}
