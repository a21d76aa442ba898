package tz

import (
	"time"
)

// TimeZone is a handle to a zone record in the database. Records are owned
// by the facility, immutable, and shared; a nil handle is rejected by every
// operation that takes one.
type TimeZone = *time.Location

// SysTime is a physical instant on the system clock's continuous time
// scale. It is the facility's own time.Time, conventionally held in UTC.
type SysTime = time.Time

// Choose selects which instant an ambiguous local time resolves to.
type Choose int

const (
	ChooseEarliest Choose = iota
	ChooseLatest
)

func (c Choose) String() string {
	if c == ChooseLatest {
		return "latest"
	}

	return "earliest"
}

// LocalTime is a civil wall-clock reading with no zone attached: a date,
// a clock and a nanosecond. Which physical instant it denotes depends on
// the zone it is converted with.
type LocalTime struct {
	wall time.Time
}

// NewLocalTime builds a local time from civil fields. Out-of-range fields
// are normalized exactly as the facility normalizes them (October 32
// becomes November 1).
func NewLocalTime(year int, month time.Month, day, hour, min, sec, nsec int) LocalTime {
	return LocalTime{wall: time.Date(year, month, day, hour, min, sec, nsec, time.UTC)}
}

// LocalTimeOf strips the zone from a time value and keeps its wall fields.
func LocalTimeOf(t time.Time) LocalTime {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	return NewLocalTime(year, month, day, hour, min, sec, t.Nanosecond())
}

// Date returns the civil date fields.
func (lt LocalTime) Date() (year int, month time.Month, day int) {
	return lt.wall.Date()
}

// Clock returns the civil clock fields.
func (lt LocalTime) Clock() (hour, min, sec int) {
	return lt.wall.Clock()
}

// Nanosecond returns the sub-second field.
func (lt LocalTime) Nanosecond() int {
	return lt.wall.Nanosecond()
}

// Weekday returns the day of week of the civil date.
func (lt LocalTime) Weekday() time.Weekday {
	return lt.wall.Weekday()
}

// Add shifts the wall clock by a duration. This is civil arithmetic; it
// knows nothing about transitions in any particular zone.
func (lt LocalTime) Add(d time.Duration) LocalTime {
	return LocalTime{wall: lt.wall.Add(d)}
}

// Sub returns the civil difference between two wall clock readings.
func (lt LocalTime) Sub(o LocalTime) time.Duration {
	return lt.wall.Sub(o.wall)
}

func (lt LocalTime) Equal(o LocalTime) bool {
	return lt.wall.Equal(o.wall)
}

func (lt LocalTime) Before(o LocalTime) bool {
	return lt.wall.Before(o.wall)
}

func (lt LocalTime) After(o LocalTime) bool {
	return lt.wall.After(o.wall)
}

func (lt LocalTime) IsZero() bool {
	return lt.wall.IsZero()
}

// String renders the wall reading without any zone designator.
func (lt LocalTime) String() string {
	return lt.wall.Format("2006-01-02T15:04:05.999999999")
}
