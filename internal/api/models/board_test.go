package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobbyboard/lobbyboard/internal/api/models"
	"github.com/lobbyboard/lobbyboard/internal/board"
)

func TestNewBoardSnapshot(t *testing.T) {
	b := board.New([]string{"station-a", "station-b"})
	b.SetClock("14:05", "Mon, Jan 5")
	b.SetStation("station-a", 7, 11)
	b.SetStationUnavailable("station-b")
	b.SetMenu([]board.MenuLine{
		{Icon: "🍲", Category: "Soup", Name: "Minestrone", Price: "$4.95"},
	})
	b.SetWeather("🌧️", "Rain · 16°C", "Feels like: 14°C · Humidity: 80% · Wind: 3.4 m/s", board.ThemeRain)

	snap := models.NewBoardSnapshot(b.Snapshot())

	assert.Equal(t, "14:05", snap.Clock.Time)
	assert.Equal(t, "Mon, Jan 5", snap.Clock.Date)

	require.Len(t, snap.Stations, 2)
	assert.Equal(t, "station-a", snap.Stations[0].StationID)
	assert.Equal(t, "7 bikes · 11 docks", snap.Stations[0].Text)
	assert.Equal(t, board.StateUnavailable, snap.Stations[1].State)
	assert.Equal(t, "Unavailable", snap.Stations[1].Text)

	require.Len(t, snap.Menu.Lines, 1)
	assert.Equal(t, "🍲", snap.Menu.Lines[0].Icon)

	assert.Equal(t, "Rain · 16°C", snap.Weather.Summary)
	assert.Equal(t, board.ThemeRain, snap.Theme)
}

func TestBoardSnapshot_JSONFieldNames(t *testing.T) {
	// The page refresh script reads these exact field names.
	b := board.New([]string{"station-a"})
	b.SetClock("09:30", "Tue, Feb 3")
	b.SetMenuUnavailable("unable to load menu")
	b.SetWeatherUnavailable()

	data, err := json.Marshal(models.NewBoardSnapshot(b.Snapshot()))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	clock, ok := decoded["clock"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "09:30", clock["time"])
	assert.Equal(t, "Tue, Feb 3", clock["date"])

	stations, ok := decoded["stations"].([]interface{})
	require.True(t, ok)
	require.Len(t, stations, 1)
	station := stations[0].(map[string]interface{})
	assert.Contains(t, station, "stationId")
	assert.Contains(t, station, "text")

	menuBlock, ok := decoded["menu"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "unable to load menu", menuBlock["notice"])

	weatherBlock, ok := decoded["weather"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "weather unavailable", weatherBlock["warning"])

	assert.Equal(t, "clear", decoded["theme"])
}
