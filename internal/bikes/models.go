// Package bikes provides bike-share station availability data.
package bikes

import "errors"

// Bike data errors.
var (
	// ErrFeedUnavailable indicates the station feed could not be fetched
	// or decoded.
	ErrFeedUnavailable = errors.New("bike feed unavailable")

	// ErrStationNotFound indicates the feed was fetched successfully but
	// did not contain the requested station. This is a distinct outcome
	// from a fetch failure, even though the board renders both the same.
	ErrStationNotFound = errors.New("station not found in feed")
)

// StationStatus is the current availability at a single dock station.
type StationStatus struct {
	// StationID is the feed's station identifier.
	StationID string

	// BikesAvailable is the number of rentable bikes (never negative).
	BikesAvailable int

	// DocksAvailable is the number of open docks (never negative).
	DocksAvailable int
}
