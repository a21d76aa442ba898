package tz

import (
	"time"

	"tzbridge/shared/failure"
)

// LocalResult classifies a wall clock reading against a zone's transition
// history.
type LocalResult int

const (
	// Unique means exactly one instant carries this wall reading.
	Unique LocalResult = iota
	// Ambiguous means two instants do, around a backward transition.
	Ambiguous
	// Nonexistent means none does, inside a forward gap.
	Nonexistent
)

func (r LocalResult) String() string {
	switch r {
	case Ambiguous:
		return "ambiguous"
	case Nonexistent:
		return "nonexistent"
	default:
		return "unique"
	}
}

// LocalInfo is the classification of one wall reading in one zone.
//
// For Unique, First is the instant. For Ambiguous, First and Second are the
// earlier and later instants. For Nonexistent, First is the transition
// instant that swallowed the reading and Second is the reading pushed
// forward by the gap length.
type LocalInfo struct {
	Result LocalResult
	First  SysTime
	Second SysTime
}

// SysInfo describes the zone interval a given instant falls in: its offset,
// abbreviation, DST flag and bounds. Zero bounds mean the interval extends
// past the facility's transition history.
type SysInfo struct {
	Begin  time.Time
	End    time.Time
	Offset time.Duration
	Abbrev string
	IsDST  bool
}

// Info reports the zone interval in force at an instant.
func Info(st SysTime, loc *time.Location) (SysInfo, error) {
	if loc == nil {
		return SysInfo{}, failure.NullZone("sys info")
	}

	t := st.In(loc)
	abbrev, offset := t.Zone()
	begin, end := t.ZoneBounds()

	return SysInfo{
		Begin:  begin,
		End:    end,
		Offset: time.Duration(offset) * time.Second,
		Abbrev: abbrev,
		IsDST:  t.IsDST(),
	}, nil
}

// Classify resolves a wall reading against a zone. All rule knowledge comes
// from the facility: the reading is interpreted with time.Date and the
// neighboring zone intervals (ZoneBounds) are probed for a second instant
// carrying the same wall fields.
func Classify(lt LocalTime, loc *time.Location) (LocalInfo, error) {
	if loc == nil {
		return LocalInfo{}, failure.NullZone("classify local time")
	}

	year, month, day := lt.Date()
	hour, min, sec := lt.Clock()

	t := time.Date(year, month, day, hour, min, sec, lt.Nanosecond(), loc)

	if !sameWall(t, lt) {
		// The reading sits inside a forward gap. Which side of the gap
		// time.Date lands on is unspecified, so derive the result
		// deterministically: locate the transition from t's interval,
		// then interpret the wall fields at the pre-transition offset,
		// which maps the reading ahead by exactly the gap length.
		begin, end := t.ZoneBounds()

		transition := begin
		if LocalTimeOf(t).Before(lt) {
			transition = end
		}

		_, before := transition.Add(-time.Second).In(loc).Zone()
		normalized := lt.wall.Add(-time.Duration(before) * time.Second)

		return LocalInfo{Result: Nonexistent, First: transition.UTC(), Second: normalized.UTC()}, nil
	}

	_, offset := t.Zone()
	begin, end := t.ZoneBounds()

	// A fold partner, when it exists, lives in the adjacent interval and is
	// reachable by applying the offset difference to t.
	if !end.IsZero() {
		if _, next := end.Zone(); next != offset {
			alt := t.Add(time.Duration(offset-next) * time.Second)
			if sameWall(alt, lt) && !alt.Before(end) {
				return LocalInfo{Result: Ambiguous, First: t.UTC(), Second: alt.UTC()}, nil
			}
		}
	}

	if !begin.IsZero() {
		if _, prev := begin.Add(-time.Second).Zone(); prev != offset {
			alt := t.Add(time.Duration(offset-prev) * time.Second)
			if sameWall(alt, lt) && alt.Before(begin) {
				return LocalInfo{Result: Ambiguous, First: alt.UTC(), Second: t.UTC()}, nil
			}
		}
	}

	return LocalInfo{Result: Unique, First: t.UTC()}, nil
}

func sameWall(t time.Time, lt LocalTime) bool {
	return LocalTimeOf(t).Equal(lt)
}
