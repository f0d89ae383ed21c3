// Package biztime pins the campus timezone used for scheduling and day
// boundary calculations. All storage and transport stay in UTC; the
// campus timezone only decides when scheduled jobs fire.
package biztime

import (
	"sync"
	"time"
)

// DefaultTimezone is used when no timezone is configured. Metric day
// boundaries are UTC, so the scheduler defaults to UTC too.
const DefaultTimezone = "UTC"

var (
	campusLocation *time.Location
	locationOnce   sync.Once
	initErr        error
)

// Init loads the campus timezone. Called once at startup; an empty tz
// falls back to DefaultTimezone.
func Init(tz string) error {
	locationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		campusLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the campus timezone, initializing with the default
// when Init was never called.
func Location() *time.Location {
	if campusLocation == nil {
		if err := Init(""); err != nil {
			panic("biztime: failed to load default timezone: " + err.Error())
		}
	}
	return campusLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
