package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobbyboard/lobbyboard/internal/board"
	"github.com/lobbyboard/lobbyboard/internal/weather"
)

func TestNew_AllRegionsStartLoading(t *testing.T) {
	b := board.New([]string{"station-a", "station-b"})
	snap := b.Snapshot()

	require.Len(t, snap.Stations, 2)
	assert.Equal(t, "station-a", snap.Stations[0].StationID)
	assert.Equal(t, "station-b", snap.Stations[1].StationID)
	assert.Equal(t, board.StateLoading, snap.Stations[0].Region.State)
	assert.Equal(t, board.StateLoading, snap.Stations[1].Region.State)
	assert.Equal(t, board.StateLoading, snap.Menu.State)
	assert.Equal(t, board.StateLoading, snap.Weather.State)
	assert.Equal(t, board.ThemeClear, snap.Theme)
}

func TestSetClock(t *testing.T) {
	b := board.New(nil)
	b.SetClock("14:05", "Mon, Jan 5")

	snap := b.Snapshot()
	assert.Equal(t, "14:05", snap.Clock.Time)
	assert.Equal(t, "Mon, Jan 5", snap.Clock.Date)
}

func TestSetStation_FormatsAvailability(t *testing.T) {
	b := board.New([]string{"station-a"})
	b.SetStation("station-a", 7, 11)

	snap := b.Snapshot()
	assert.Equal(t, board.StatePopulated, snap.Stations[0].Region.State)
	assert.Equal(t, "7 bikes · 11 docks", snap.Stations[0].Region.Text)
}

func TestSetStation_ZeroCounts(t *testing.T) {
	b := board.New([]string{"station-a"})
	b.SetStation("station-a", 0, 0)

	snap := b.Snapshot()
	assert.Equal(t, "0 bikes · 0 docks", snap.Stations[0].Region.Text)
}

func TestSetStationUnavailable(t *testing.T) {
	b := board.New([]string{"station-a"})
	b.SetStationUnavailable("station-a")

	snap := b.Snapshot()
	assert.Equal(t, board.StateUnavailable, snap.Stations[0].Region.State)
	assert.Equal(t, "Unavailable", snap.Stations[0].Region.Text)
}

func TestStation_NeverReturnsToLoading(t *testing.T) {
	b := board.New([]string{"station-a"})

	b.SetStation("station-a", 3, 5)
	assert.Equal(t, board.StatePopulated, b.Snapshot().Stations[0].Region.State)

	// A failure after a success shows the fallback, not a spinner.
	b.SetStationUnavailable("station-a")
	snap := b.Snapshot()
	assert.Equal(t, board.StateUnavailable, snap.Stations[0].Region.State)
	assert.Equal(t, "Unavailable", snap.Stations[0].Region.Text)

	// And a later success recovers fully.
	b.SetStation("station-a", 4, 4)
	snap = b.Snapshot()
	assert.Equal(t, board.StatePopulated, snap.Stations[0].Region.State)
	assert.Equal(t, "4 bikes · 4 docks", snap.Stations[0].Region.Text)
}

func TestSetMenu(t *testing.T) {
	b := board.New(nil)
	b.SetMenu([]board.MenuLine{
		{Icon: "🍲", Category: "Soup", Name: "Minestrone", Price: "$4.95"},
		{Icon: "🥪", Category: "Deli", Name: "BLT", Description: "On sourdough", Price: "$7.95"},
	})

	snap := b.Snapshot()
	assert.Equal(t, board.StatePopulated, snap.Menu.State)
	assert.Empty(t, snap.Menu.Notice)
	require.Len(t, snap.Menu.Lines, 2)
	assert.Equal(t, "Soup", snap.Menu.Lines[0].Category)
	assert.Equal(t, "Deli", snap.Menu.Lines[1].Category)
}

func TestSetMenuUnavailable_ClearsLines(t *testing.T) {
	b := board.New(nil)
	b.SetMenu([]board.MenuLine{{Category: "Soup", Name: "Minestrone"}})
	b.SetMenuUnavailable("unable to load menu")

	snap := b.Snapshot()
	assert.Equal(t, board.StateUnavailable, snap.Menu.State)
	assert.Equal(t, "unable to load menu", snap.Menu.Notice)
	assert.Empty(t, snap.Menu.Lines)
}

func TestSetWeather_SwitchesTheme(t *testing.T) {
	b := board.New(nil)
	b.SetWeather("🌧️", "Rain · 16°C", "Feels like: 14°C · Humidity: 80% · Wind: 3.4 m/s", board.ThemeRain)

	snap := b.Snapshot()
	assert.Equal(t, board.StatePopulated, snap.Weather.State)
	assert.Equal(t, "🌧️", snap.Weather.Icon)
	assert.Equal(t, "Rain · 16°C", snap.Weather.Summary)
	assert.Equal(t, "Feels like: 14°C · Humidity: 80% · Wind: 3.4 m/s", snap.Weather.Details)
	assert.Empty(t, snap.Weather.Warning)
	assert.Equal(t, board.ThemeRain, snap.Theme)
}

func TestSetWeatherUnavailable_KeepsPreviousTheme(t *testing.T) {
	b := board.New(nil)
	b.SetWeather("❄️", "Snow · -2°C", "Feels like: -8°C · Humidity: 90% · Wind: 5 m/s", board.ThemeSnow)

	b.SetWeatherUnavailable()

	snap := b.Snapshot()
	assert.Equal(t, board.StateUnavailable, snap.Weather.State)
	assert.Equal(t, "weather unavailable", snap.Weather.Warning)
	assert.Empty(t, snap.Weather.Summary)
	assert.Equal(t, board.ThemeSnow, snap.Theme, "a failed poll must not reset the background")
}

func TestSnapshot_IsACopy(t *testing.T) {
	b := board.New([]string{"station-a"})
	b.SetMenu([]board.MenuLine{{Category: "Soup", Name: "Minestrone"}})

	snap := b.Snapshot()
	snap.Menu.Lines[0].Name = "mutated"
	snap.Stations[0].Region.Text = "mutated"

	fresh := b.Snapshot()
	assert.Equal(t, "Minestrone", fresh.Menu.Lines[0].Name)
	assert.NotEqual(t, "mutated", fresh.Stations[0].Region.Text)
}

func TestThemeFor(t *testing.T) {
	tests := []struct {
		category weather.Category
		theme    board.Theme
	}{
		{weather.CategoryClear, board.ThemeClear},
		{weather.CategoryClouds, board.ThemeClouds},
		{weather.CategoryRain, board.ThemeRain},
		{weather.CategorySnow, board.ThemeSnow},
		{weather.CategoryThunderstorm, board.ThemeThunderstorm},
		{weather.CategoryUnknown, board.ThemeClear},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.theme, board.ThemeFor(tt.category))
		})
	}
}

func TestIconFor_UnknownGetsGenericIcon(t *testing.T) {
	known := map[weather.Category]bool{
		weather.CategoryClear:        true,
		weather.CategoryClouds:       true,
		weather.CategoryRain:         true,
		weather.CategorySnow:         true,
		weather.CategoryThunderstorm: true,
	}

	generic := board.IconFor(weather.CategoryUnknown)
	assert.NotEmpty(t, generic)

	for category := range known {
		assert.NotEqual(t, generic, board.IconFor(category))
	}
}
