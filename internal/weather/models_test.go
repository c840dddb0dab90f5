package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lobbyboard/lobbyboard/internal/weather"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		condition string
		expected  weather.Category
	}{
		{"Clear", weather.CategoryClear},
		{"clear sky", weather.CategoryClear},
		{"Clouds", weather.CategoryClouds},
		{"Broken Clouds", weather.CategoryClouds},
		{"Rain", weather.CategoryRain},
		{"Drizzle", weather.CategoryRain},
		{"light drizzle", weather.CategoryRain},
		{"Snow", weather.CategorySnow},
		{"Thunderstorm", weather.CategoryThunderstorm},
		{"Mist", weather.CategoryUnknown},
		{"Tornado", weather.CategoryUnknown},
		{"Haze", weather.CategoryUnknown},
		{"", weather.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			assert.Equal(t, tt.expected, weather.Classify(tt.condition))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Rules run in a fixed order and stop at the first hit, so compound
	// labels resolve to the earliest matching rule.
	assert.Equal(t, weather.CategoryRain, weather.Classify("Thundery Rain"))
	assert.Equal(t, weather.CategoryThunderstorm, weather.Classify("Heavy Thunderstorm"))
	assert.Equal(t, weather.CategoryClear, weather.Classify("Clearing Clouds"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, weather.CategoryRain, weather.Classify("RAIN"))
	assert.Equal(t, weather.CategorySnow, weather.Classify("sNoW"))
}

func TestProviderError(t *testing.T) {
	err := &weather.ProviderError{Code: 401, Message: "Invalid API key"}
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Invalid API key")
}
