package models

import "github.com/lobbyboard/lobbyboard/internal/board"

// BoardSnapshot is the JSON shape of the whole board, consumed by the
// dashboard page's refresh script.
type BoardSnapshot struct {
	Clock    Clock       `json:"clock"`
	Stations []Station   `json:"stations"`
	Menu     Menu        `json:"menu"`
	Weather  Weather     `json:"weather"`
	Theme    board.Theme `json:"theme"`
}

// Clock is the formatted time and date pair.
type Clock struct {
	Time string `json:"time"`
	Date string `json:"date"`
}

// Station is one bike station's availability line.
type Station struct {
	StationID string      `json:"stationId"`
	State     board.State `json:"state"`
	Text      string      `json:"text"`
}

// Menu is the cafe menu block.
type Menu struct {
	State  board.State `json:"state"`
	Notice string      `json:"notice,omitempty"`
	Lines  []MenuLine  `json:"lines"`
}

// MenuLine is one rendered category and item row.
type MenuLine struct {
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

// Weather is the weather block.
type Weather struct {
	State   board.State `json:"state"`
	Icon    string      `json:"icon,omitempty"`
	Summary string      `json:"summary,omitempty"`
	Details string      `json:"details,omitempty"`
	Warning string      `json:"warning,omitempty"`
}

// NewBoardSnapshot converts a board snapshot into its JSON shape.
func NewBoardSnapshot(snap board.Snapshot) BoardSnapshot {
	stations := make([]Station, 0, len(snap.Stations))
	for _, s := range snap.Stations {
		stations = append(stations, Station{
			StationID: s.StationID,
			State:     s.Region.State,
			Text:      s.Region.Text,
		})
	}

	lines := make([]MenuLine, 0, len(snap.Menu.Lines))
	for _, l := range snap.Menu.Lines {
		lines = append(lines, MenuLine{
			Icon:        l.Icon,
			Category:    l.Category,
			Name:        l.Name,
			Description: l.Description,
			Price:       l.Price,
		})
	}

	return BoardSnapshot{
		Clock: Clock{
			Time: snap.Clock.Time,
			Date: snap.Clock.Date,
		},
		Stations: stations,
		Menu: Menu{
			State:  snap.Menu.State,
			Notice: snap.Menu.Notice,
			Lines:  lines,
		},
		Weather: Weather{
			State:   snap.Weather.State,
			Icon:    snap.Weather.Icon,
			Summary: snap.Weather.Summary,
			Details: snap.Weather.Details,
			Warning: snap.Weather.Warning,
		},
		Theme: snap.Theme,
	}
}
