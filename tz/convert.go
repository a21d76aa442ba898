package tz

import (
	"time"

	"tzbridge/shared/failure"
	"tzbridge/tzdb"
)

// Resolver is the zone database consulted by the name-based conversions and
// CurrentZoneRef. Nil means the process-wide default database; tests swap
// in a mock.
var Resolver tzdb.Provider

func locator() tzdb.Provider {
	if Resolver != nil {
		return Resolver
	}

	return tzdb.Default()
}

// ToSys converts a local civil time to a system instant, resolving an
// ambiguous reading with the supplied policy. A reading inside a forward
// gap maps forward by the gap length under either policy.
func ToSys(lt LocalTime, loc *time.Location, c Choose) (SysTime, error) {
	info, err := Classify(lt, loc)
	if err != nil {
		return time.Time{}, err
	}

	switch info.Result {
	case Ambiguous:
		if c == ChooseLatest {
			return info.Second, nil
		}

		return info.First, nil
	case Nonexistent:
		return info.Second, nil
	default:
		return info.First, nil
	}
}

// ToSysStrict converts a local civil time to a system instant and fails on
// any reading a policy would otherwise have to resolve.
func ToSysStrict(lt LocalTime, loc *time.Location) (SysTime, error) {
	info, err := Classify(lt, loc)
	if err != nil {
		return time.Time{}, err
	}

	switch info.Result {
	case Ambiguous:
		return time.Time{}, failure.AmbiguousTime(lt.String(), loc.String())
	case Nonexistent:
		return time.Time{}, failure.NonexistentTime(lt.String(), loc.String())
	default:
		return info.First, nil
	}
}

// ToLocal renders a system instant in a zone's civil calendar. It succeeds
// for every valid zone and in-range instant.
func ToLocal(st SysTime, loc *time.Location) (LocalTime, error) {
	if loc == nil {
		return LocalTime{}, failure.NullZone("to local")
	}

	return LocalTimeOf(st.In(loc)), nil
}

// ToSysNamed resolves the zone name through the database, then converts.
// Results are identical to ToSys with the record Locate returns.
func ToSysNamed(lt LocalTime, name string, c Choose) (SysTime, error) {
	loc, err := locator().Locate(name)
	if err != nil {
		return time.Time{}, err
	}

	return ToSys(lt, loc, c)
}

// ToSysNamedStrict is ToSysStrict by zone name.
func ToSysNamedStrict(lt LocalTime, name string) (SysTime, error) {
	loc, err := locator().Locate(name)
	if err != nil {
		return time.Time{}, err
	}

	return ToSysStrict(lt, loc)
}

// ToLocalNamed is ToLocal by zone name.
func ToLocalNamed(st SysTime, name string) (LocalTime, error) {
	loc, err := locator().Locate(name)
	if err != nil {
		return LocalTime{}, err
	}

	return ToLocal(st, loc)
}

// CurrentZoneRef returns the process zone and never a nil location: when
// the facility cannot determine one, it fails with a null-zone condition.
func CurrentZoneRef() (*time.Location, error) {
	loc, err := locator().Current()
	if err != nil {
		return nil, err
	}

	if loc == nil {
		return nil, failure.NullZonePointer
	}

	return loc, nil
}
