package chrono

import (
	"fmt"
	"time"

	"tzbridge/shared/failure"
	"tzbridge/tz"
)

// YearMonthDay is a civil date composed of calendar fields.
type YearMonthDay struct {
	Year  int
	Month time.Month
	Day   int
}

// YMDOf extracts the civil date of a time value.
func YMDOf(t time.Time) YearMonthDay {
	year, month, day := t.Date()

	return YearMonthDay{Year: year, Month: month, Day: day}
}

// Valid reports whether the fields name a real calendar day, by checking
// that the facility's normalization leaves them unchanged.
func (d YearMonthDay) Valid() bool {
	year, month, day := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Date()

	return year == d.Year && month == d.Month && day == d.Day
}

// At pairs the date with a wall clock reading.
func (d YearMonthDay) At(hour, min, sec, nsec int) tz.LocalTime {
	return tz.NewLocalTime(d.Year, d.Month, d.Day, hour, min, sec, nsec)
}

// In returns the instant of midnight of this date in a zone. Midnight is
// itself subject to transitions (some zones spring forward over 00:00), so
// the earliest policy applies.
func (d YearMonthDay) In(loc *time.Location) (time.Time, error) {
	return tz.ToSys(d.At(0, 0, 0, 0), loc, tz.ChooseEarliest)
}

// Weekday returns the day of week of the date.
func (d YearMonthDay) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d YearMonthDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// LastDayOfMonth returns the final day of a month, via the facility's
// zeroth-day normalization.
func LastDayOfMonth(year int, month time.Month) YearMonthDay {
	return YMDOf(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC))
}

// YearMonthWeekday names a day as the Nth weekday of a month, the way
// transition rules are usually written ("second Sunday in March").
type YearMonthWeekday struct {
	Year    int
	Month   time.Month
	Weekday time.Weekday
	Nth     int
}

// Date resolves the expression to a civil date. Nth must be 1 to 5 and the
// month must actually contain that many of the weekday.
func (w YearMonthWeekday) Date() (YearMonthDay, error) {
	if w.Nth < 1 || w.Nth > 5 {
		return YearMonthDay{}, failure.Invalid(fmt.Sprintf("weekday index %d out of range 1..5", w.Nth))
	}

	first := time.Date(w.Year, w.Month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(w.Weekday) - int(first.Weekday()) + 7) % 7

	d := YearMonthDay{Year: w.Year, Month: w.Month, Day: 1 + offset + (w.Nth-1)*7}
	if !d.Valid() {
		return YearMonthDay{}, failure.Invalid(fmt.Sprintf("%s has no %s #%d", d.Month, w.Weekday, w.Nth))
	}

	return d, nil
}

// LastWeekdayOfMonth resolves the "last Sunday of October" form.
func LastWeekdayOfMonth(year int, month time.Month, weekday time.Weekday) YearMonthDay {
	last := LastDayOfMonth(year, month)
	back := (int(last.Weekday()) - int(weekday) + 7) % 7

	return YearMonthDay{Year: year, Month: month, Day: last.Day - back}
}

// HHMMSS is a duration decomposed into clock fields.
type HHMMSS struct {
	Negative    bool
	Hours       int
	Minutes     int
	Seconds     int
	Nanoseconds int
}

// HHMMSSOf decomposes a duration.
func HHMMSSOf(d time.Duration) HHMMSS {
	abs := d.Abs()

	return HHMMSS{
		Negative:    d < 0,
		Hours:       int(abs / time.Hour),
		Minutes:     int(abs % time.Hour / time.Minute),
		Seconds:     int(abs % time.Minute / time.Second),
		Nanoseconds: int(abs % time.Second),
	}
}

// HHMMSSOfClock captures the clock fields of a time value as a duration
// since that day's midnight reading.
func HHMMSSOfClock(t time.Time) HHMMSS {
	hour, min, sec := t.Clock()

	return HHMMSS{Hours: hour, Minutes: min, Seconds: sec, Nanoseconds: t.Nanosecond()}
}

// Duration recomposes the fields.
func (h HHMMSS) Duration() time.Duration {
	d := time.Duration(h.Hours)*time.Hour +
		time.Duration(h.Minutes)*time.Minute +
		time.Duration(h.Seconds)*time.Second +
		time.Duration(h.Nanoseconds)

	if h.Negative {
		return -d
	}

	return d
}

func (h HHMMSS) String() string {
	sign := ""
	if h.Negative {
		sign = "-"
	}

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h.Hours, h.Minutes, h.Seconds)
}

// IsAM reports whether an hour of day belongs to the AM half.
func IsAM(hour int) bool {
	return hour >= 0 && hour < 12
}

// IsPM reports whether an hour of day belongs to the PM half.
func IsPM(hour int) bool {
	return hour >= 12 && hour < 24
}

// Make12 converts a 24-hour value to its 12-hour clock form. The argument
// must be an hour of day, 0 through 23.
func Make12(hour int) int {
	h := hour % 12
	if h == 0 {
		h = 12
	}

	return h
}

// Make24 converts a 12-hour value and AM/PM flag to the 24-hour form. The
// argument must be a 12-hour clock reading, 1 through 12; anything else is
// reduced modulo 12 first, so Make24(Make12(h), IsPM(h)) == h holds for
// every hour of day.
func Make24(hour int, pm bool) int {
	h := hour % 12
	if pm {
		h += 12
	}

	return h
}
