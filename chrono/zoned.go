package chrono

import (
	"time"

	"tzbridge/tz"
)

// The zoned-time constructors mirror the overload set legacy call sites
// used; each forwards to the tz package unchanged.

// NewZoned pairs a zone with the Unix epoch.
func NewZoned(loc *time.Location) (tz.ZonedTime, error) {
	return tz.NewZonedTime(loc, time.Unix(0, 0).UTC())
}

// NewZonedAt pairs a zone with an instant.
func NewZonedAt(loc *time.Location, t time.Time) (tz.ZonedTime, error) {
	return tz.NewZonedTime(loc, t)
}

// NewZonedLocal interprets a civil reading in the zone under a policy.
func NewZonedLocal(loc *time.Location, lt tz.LocalTime, c tz.Choose) (tz.ZonedTime, error) {
	return tz.NewZonedTimeLocal(loc, lt, c)
}

// NewZonedNamed resolves the zone by name, then pairs it with an instant.
func NewZonedNamed(name string, t time.Time) (tz.ZonedTime, error) {
	return tz.NewZonedTimeNamed(name, t)
}
