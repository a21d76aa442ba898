package chrono

import (
	"time"
)

// Day and Week are fixed 24h-based duration units. They measure physical
// time, not civil days: a civil day across a DST transition is 23 or 25
// hours long.
const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// Floor rounds a duration down toward negative infinity to a multiple of
// unit. Truncate alone rounds toward zero, which differs for negative
// durations.
func Floor(d, unit time.Duration) time.Duration {
	if unit <= 0 {
		return d
	}

	r := d.Truncate(unit)
	if d < 0 && r != d {
		r -= unit
	}

	return r
}

// Ceil rounds a duration up toward positive infinity to a multiple of unit.
func Ceil(d, unit time.Duration) time.Duration {
	if unit <= 0 {
		return d
	}

	r := d.Truncate(unit)
	if d > 0 && r != d {
		r += unit
	}

	return r
}

// Round rounds to the nearest multiple of unit, halves away from zero, as
// the facility's Duration.Round does.
func Round(d, unit time.Duration) time.Duration {
	return d.Round(unit)
}

// Abs returns the absolute value of a duration.
func Abs(d time.Duration) time.Duration {
	return d.Abs()
}

// FloorTime rounds an instant down to a multiple of unit since the zero
// time, as the facility's Time.Truncate does.
func FloorTime(t time.Time, unit time.Duration) time.Time {
	return t.Truncate(unit)
}

// CeilTime rounds an instant up to a multiple of unit since the zero time.
func CeilTime(t time.Time, unit time.Duration) time.Time {
	if unit <= 0 {
		return t
	}

	r := t.Truncate(unit)
	if !r.Equal(t) {
		r = r.Add(unit)
	}

	return r
}

// RoundTime rounds an instant to the nearest multiple of unit, halves up,
// as the facility's Time.Round does.
func RoundTime(t time.Time, unit time.Duration) time.Time {
	return t.Round(unit)
}
