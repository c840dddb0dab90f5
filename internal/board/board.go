// Package board holds the display state of the lobby dashboard: six named
// regions plus the page-level background theme. Each region is written
// wholesale by exactly one poller and read by the HTTP surface.
package board

import (
	"fmt"
	"sync"
)

// State is a region's display state. A region starts Loading, moves to
// Populated or Unavailable on its first completed fetch, and never returns
// to Loading afterwards.
type State string

const (
	StateLoading     State = "LOADING"
	StatePopulated   State = "POPULATED"
	StateUnavailable State = "UNAVAILABLE"
)

// Fallback strings rendered on failure. These are the exact texts shown on
// the screen.
const (
	StationUnavailableText = "Unavailable"
	WeatherUnavailableText = "weather unavailable"
)

// ClockRegion is the time/date pair at the top of the board.
type ClockRegion struct {
	Time string
	Date string
}

// StationRegion is one bike station's availability line.
type StationRegion struct {
	State State
	Text  string
}

// MenuLine is one rendered category→item row.
type MenuLine struct {
	Icon        string
	Category    string
	Name        string
	Description string
	Price       string
}

// MenuRegion is the cafe menu block. On failure Notice carries the
// italicized fallback message and Lines is empty.
type MenuRegion struct {
	State  State
	Notice string
	Lines  []MenuLine
}

// WeatherRegion is the weather block. Populated regions carry an icon, a
// summary line and a details line; unavailable regions carry the fixed
// warning instead.
type WeatherRegion struct {
	State   State
	Icon    string
	Summary string
	Details string
	Warning string
}

// Snapshot is a consistent copy of the whole board, safe to render.
type Snapshot struct {
	Clock    ClockRegion
	Stations []StationSnapshot
	Menu     MenuRegion
	Weather  WeatherRegion
	Theme    Theme
}

// StationSnapshot pairs a station region with its identifier, in display
// order.
type StationSnapshot struct {
	StationID string
	Region    StationRegion
}

// Board is the mutable display state. Writers are the pollers (one region
// each); readers are HTTP handlers taking snapshots.
type Board struct {
	mu sync.RWMutex

	clock        ClockRegion
	stationOrder []string
	stations     map[string]StationRegion
	menu         MenuRegion
	weather      WeatherRegion
	theme        Theme
}

// New creates a board with every region Loading and the default clear-sky
// theme. stationIDs fixes the set and display order of station regions.
func New(stationIDs []string) *Board {
	stations := make(map[string]StationRegion, len(stationIDs))
	for _, id := range stationIDs {
		stations[id] = StationRegion{State: StateLoading}
	}

	return &Board{
		stationOrder: append([]string(nil), stationIDs...),
		stations:     stations,
		menu:         MenuRegion{State: StateLoading},
		weather:      WeatherRegion{State: StateLoading},
		theme:        ThemeClear,
	}
}

// SetClock writes the formatted time and date.
func (b *Board) SetClock(timeText, dateText string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clock = ClockRegion{Time: timeText, Date: dateText}
}

// SetStation writes a populated availability line for one station.
func (b *Board) SetStation(stationID string, bikesAvailable, docksAvailable int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stations[stationID] = StationRegion{
		State: StatePopulated,
		Text:  fmt.Sprintf("%d bikes · %d docks", bikesAvailable, docksAvailable),
	}
}

// SetStationUnavailable marks one station region unavailable. Fetch
// failures and unknown station identifiers both land here.
func (b *Board) SetStationUnavailable(stationID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stations[stationID] = StationRegion{
		State: StateUnavailable,
		Text:  StationUnavailableText,
	}
}

// SetMenu writes the populated menu lines, replacing any previous content.
func (b *Board) SetMenu(lines []MenuLine) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.menu = MenuRegion{
		State: StatePopulated,
		Lines: append([]MenuLine(nil), lines...),
	}
}

// SetMenuUnavailable writes the menu fallback notice ("no menu available
// for <weekday>" or "unable to load menu").
func (b *Board) SetMenuUnavailable(notice string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.menu = MenuRegion{
		State:  StateUnavailable,
		Notice: notice,
	}
}

// SetWeather writes the populated weather region and switches the
// background theme. The theme follows only successful classifications.
func (b *Board) SetWeather(icon, summary, details string, theme Theme) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.weather = WeatherRegion{
		State:   StatePopulated,
		Icon:    icon,
		Summary: summary,
		Details: details,
	}
	b.theme = theme
}

// SetWeatherUnavailable writes the fixed weather warning. The background
// theme is deliberately left as it was.
func (b *Board) SetWeatherUnavailable() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.weather = WeatherRegion{
		State:   StateUnavailable,
		Warning: WeatherUnavailableText,
	}
}

// Snapshot returns a consistent copy of the board.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stations := make([]StationSnapshot, 0, len(b.stationOrder))
	for _, id := range b.stationOrder {
		stations = append(stations, StationSnapshot{StationID: id, Region: b.stations[id]})
	}

	menu := b.menu
	menu.Lines = append([]MenuLine(nil), b.menu.Lines...)

	return Snapshot{
		Clock:    b.clock,
		Stations: stations,
		Menu:     menu,
		Weather:  b.weather,
		Theme:    b.theme,
	}
}
