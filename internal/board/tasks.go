package board

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lobbyboard/lobbyboard/internal/bikes"
	"github.com/lobbyboard/lobbyboard/internal/menu"
	"github.com/lobbyboard/lobbyboard/internal/provider/resilience"
	"github.com/lobbyboard/lobbyboard/internal/scheduler"
	"github.com/lobbyboard/lobbyboard/internal/weather"
)

// Clock display formats. The board runs a 24-hour clock and a short
// weekday/month date line.
const (
	clockTimeFormat = "15:04"
	clockDateFormat = "Mon, Jan 2"
)

var titleCaser = cases.Title(language.English)

// ClockTask returns the 1-second clock updater. It reads the system clock
// through now so tests can pin the time.
func ClockTask(b *Board, interval time.Duration, now func() time.Time) scheduler.Task {
	return scheduler.Task{
		Name:     "clock",
		Interval: interval,
		Run: func(_ context.Context) error {
			t := now()
			b.SetClock(t.Format(clockTimeFormat), t.Format(clockDateFormat))
			return nil
		},
	}
}

// StationTaskConfig holds the wiring for one bike station poller.
type StationTaskConfig struct {
	Board     *Board
	Service   *bikes.Service
	StationID string
	Interval  time.Duration
	Logger    zerolog.Logger

	// Registry receives poll outcomes for the ops status endpoint
	// (optional).
	Registry     *resilience.Registry
	ProviderName string
}

// StationTask returns the poller for one bike station. Each configured
// station gets its own task so a failure or slow fetch for one never
// delays the other's render.
func StationTask(cfg StationTaskConfig) scheduler.Task {
	return scheduler.Task{
		Name:     "bikes:" + cfg.StationID,
		Interval: cfg.Interval,
		Run: func(ctx context.Context) error {
			status, err := cfg.Service.GetStation(ctx, cfg.StationID)
			if err != nil {
				// Unknown station and fetch failure render identically;
				// the distinction only matters for diagnostics.
				cfg.Logger.Error().Err(err).
					Str("station_id", cfg.StationID).
					Bool("not_found", bikes.IsNotFound(err)).
					Msg("bike station poll failed")
				cfg.Board.SetStationUnavailable(cfg.StationID)
				recordOutcome(cfg.Registry, cfg.ProviderName, err)
				return err
			}

			cfg.Board.SetStation(cfg.StationID, status.BikesAvailable, status.DocksAvailable)
			recordOutcome(cfg.Registry, cfg.ProviderName, nil)
			return nil
		},
	}
}

// MenuTaskConfig holds the wiring for the fetch-once menu loader.
type MenuTaskConfig struct {
	Board   *Board
	Service *menu.Service
	Logger  zerolog.Logger

	// Now supplies the local calendar day (defaults to time.Now).
	Now func() time.Time

	Registry     *resilience.Registry
	ProviderName string
}

// MenuTask returns the menu loader. It runs once at startup: the menu is
// assumed static for the displayed day and the screen process is restarted
// daily.
func MenuTask(cfg MenuTaskConfig) scheduler.Task {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return scheduler.Task{
		Name: "menu",
		Run: func(ctx context.Context) error {
			weekday := now().Weekday().String()

			day, err := cfg.Service.ForDay(ctx, weekday)
			if err != nil {
				cfg.Logger.Error().Err(err).
					Str("weekday", weekday).
					Msg("menu load failed")
				cfg.Board.SetMenuUnavailable(menuNotice(err, weekday))
				recordOutcome(cfg.Registry, cfg.ProviderName, err)
				return err
			}

			lines := make([]MenuLine, 0, len(day))
			for _, entry := range day {
				lines = append(lines, MenuLine{
					Icon:        menu.IconFor(entry.Category),
					Category:    entry.Category,
					Name:        entry.Item.Name,
					Description: entry.Item.Description,
					Price:       entry.Item.Price,
				})
			}
			cfg.Board.SetMenu(lines)
			recordOutcome(cfg.Registry, cfg.ProviderName, nil)
			return nil
		},
	}
}

// menuNotice picks the fallback message for a failed menu load.
func menuNotice(err error, weekday string) string {
	if errors.Is(err, menu.ErrNoMenuForDay) {
		return fmt.Sprintf("no menu available for %s", weekday)
	}
	return "unable to load menu"
}

// WeatherTaskConfig holds the wiring for the weather poller.
type WeatherTaskConfig struct {
	Board    *Board
	Provider weather.Provider
	Lat      float64
	Lon      float64
	Interval time.Duration
	Logger   zerolog.Logger

	Registry     *resilience.Registry
	ProviderName string
}

// WeatherTask returns the weather poller. Success re-themes the board;
// failure renders the fixed warning and leaves the previous theme alone.
func WeatherTask(cfg WeatherTaskConfig) scheduler.Task {
	return scheduler.Task{
		Name:     "weather",
		Interval: cfg.Interval,
		Run: func(ctx context.Context) error {
			obs, err := cfg.Provider.GetCurrentWeather(ctx, cfg.Lat, cfg.Lon)
			if err != nil {
				cfg.Logger.Error().Err(err).Msg("weather poll failed")
				cfg.Board.SetWeatherUnavailable()
				recordOutcome(cfg.Registry, cfg.ProviderName, err)
				return err
			}

			category := weather.Classify(obs.Condition)
			cfg.Board.SetWeather(
				IconFor(category),
				weatherSummary(obs),
				weatherDetails(obs),
				ThemeFor(category),
			)
			recordOutcome(cfg.Registry, cfg.ProviderName, nil)
			return nil
		},
	}
}

// weatherSummary renders the headline line, e.g. "Rain · 16°C".
func weatherSummary(obs *weather.Observation) string {
	return fmt.Sprintf("%s · %d°C", titleCaser.String(obs.Condition), roundTemp(obs.Temperature))
}

// weatherDetails renders the secondary line, e.g.
// "Feels like: 14°C · Humidity: 80% · Wind: 3.4 m/s".
func weatherDetails(obs *weather.Observation) string {
	return fmt.Sprintf("Feels like: %d°C · Humidity: %d%% · Wind: %s m/s",
		roundTemp(obs.FeelsLike),
		obs.Humidity,
		strconv.FormatFloat(obs.WindSpeed, 'f', -1, 64),
	)
}

func roundTemp(celsius float64) int {
	return int(math.Round(celsius))
}

func recordOutcome(registry *resilience.Registry, provider string, err error) {
	if registry == nil || provider == "" {
		return
	}
	if err != nil {
		registry.RecordFailure(provider, err)
		return
	}
	registry.RecordSuccess(provider)
}
