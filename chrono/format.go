package chrono

import (
	"time"

	"github.com/jeffjen/datefmt"
	"github.com/leekchan/timeutil"

	"tzbridge/shared/failure"
	"tzbridge/tz"
)

// Format renders a time with a Go reference layout.
func Format(layout string, t time.Time) string {
	return t.Format(layout)
}

// FormatZoned renders a zoned time in its own zone.
func FormatZoned(layout string, zt tz.ZonedTime) string {
	return zt.Format(layout)
}

// FormatLocal renders a zone-less civil reading.
func FormatLocal(layout string, lt tz.LocalTime) string {
	year, month, day := lt.Date()
	hour, min, sec := lt.Clock()

	return time.Date(year, month, day, hour, min, sec, lt.Nanosecond(), time.UTC).Format(layout)
}

// Parse reads a time with a Go reference layout; failures are the
// facility's own, passed through unmodified.
func Parse(layout, value string) (time.Time, error) {
	return time.Parse(layout, value)
}

// ParseInZone reads a time interpreting zone-less input in the given zone.
func ParseInZone(layout, value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, failure.NullZone("parse in zone")
	}

	return time.ParseInLocation(layout, value, loc)
}

// ParseLocal reads a zone-less civil reading, discarding any offset the
// input may carry.
func ParseLocal(layout, value string) (tz.LocalTime, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return tz.LocalTime{}, err
	}

	return tz.LocalTimeOf(t), nil
}

// Strftime renders a time with C-style format flags (%Y-%m-%d %H:%M:%S and
// friends), for call sites written against the legacy format routine.
func Strftime(format string, t time.Time) (string, error) {
	return timeutil.Strftime(&t, format), nil
}

// Strptime reads a time with C-style format flags. The underlying strptime
// does not carry sub-second precision.
func Strptime(format, value string) (time.Time, error) {
	return datefmt.Strptime(format, value)
}
