package tz

import (
	"time"

	"tzbridge/shared/failure"
)

// ZonedTime pairs a physical instant with a time zone reference, for
// rendering or interpreting that instant in local civil terms. Values built
// through the constructors never hold a nil zone; the zero value renders in
// UTC.
type ZonedTime struct {
	loc *time.Location
	t   time.Time
}

// NewZonedTime pairs an instant with a zone. A nil zone fails immediately
// with a null-zone condition rather than surfacing as a later dereference.
func NewZonedTime(loc *time.Location, st SysTime) (ZonedTime, error) {
	if loc == nil {
		return ZonedTime{}, failure.NullZone("zoned time")
	}

	return ZonedTime{loc: loc, t: st.UTC()}, nil
}

// NewZonedTimeLocal interprets a local civil time in the zone, resolving
// ambiguity with the supplied policy.
func NewZonedTimeLocal(loc *time.Location, lt LocalTime, c Choose) (ZonedTime, error) {
	st, err := ToSys(lt, loc, c)
	if err != nil {
		return ZonedTime{}, err
	}

	return ZonedTime{loc: loc, t: st.UTC()}, nil
}

// NewZonedTimeNamed resolves the zone name through the database first.
func NewZonedTimeNamed(name string, st SysTime) (ZonedTime, error) {
	loc, err := locator().Locate(name)
	if err != nil {
		return ZonedTime{}, err
	}

	return NewZonedTime(loc, st)
}

// Now returns the current instant zoned to the process zone.
func Now() (ZonedTime, error) {
	loc, err := CurrentZoneRef()
	if err != nil {
		return ZonedTime{}, err
	}

	return ZonedTime{loc: loc, t: time.Now().UTC()}, nil
}

// Zone returns the paired zone record.
func (zt ZonedTime) Zone() *time.Location {
	if zt.loc == nil {
		return time.UTC
	}

	return zt.loc
}

// SysTime returns the paired instant in UTC.
func (zt ZonedTime) SysTime() SysTime {
	return zt.t.UTC()
}

// LocalTime returns the instant's civil reading in the paired zone.
func (zt ZonedTime) LocalTime() LocalTime {
	return LocalTimeOf(zt.t.In(zt.Zone()))
}

// In re-zones the same instant.
func (zt ZonedTime) In(loc *time.Location) (ZonedTime, error) {
	return NewZonedTime(loc, zt.t)
}

// Info reports the zone interval in force at the paired instant.
func (zt ZonedTime) Info() SysInfo {
	info, _ := Info(zt.t, zt.Zone())
	return info
}

// Equal reports whether two zoned times denote the same instant, whatever
// their zones.
func (zt ZonedTime) Equal(o ZonedTime) bool {
	return zt.t.Equal(o.t)
}

// Format renders the instant in the paired zone.
func (zt ZonedTime) Format(layout string) string {
	return zt.t.In(zt.Zone()).Format(layout)
}

func (zt ZonedTime) String() string {
	return zt.t.In(zt.Zone()).String()
}
