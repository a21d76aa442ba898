// Package tz converts between system time and zoned civil time, in the
// shape legacy date/time call sites expect.
//
// Usage Examples:
//
//  1. Local civil time to a physical instant, resolving DST ambiguity:
//     st, err := tz.ToSys(tz.NewLocalTime(2024, time.November, 3, 1, 30, 0, 0), loc, tz.ChooseEarliest)
//
//  2. A physical instant rendered in a zone's civil calendar:
//     lt, err := tz.ToLocal(time.Now(), loc)
//
//  3. By zone name, resolved through the process database:
//     st, err := tz.ToSysNamed(lt, "America/New_York", tz.ChooseEarliest)
//
//  4. The process zone, guaranteed non-nil:
//     loc, err := tz.CurrentZoneRef()
//
//  5. A zoned time pairing an instant with its zone:
//     zt, err := tz.NewZonedTime(loc, time.Now())
//
// All conversions delegate to the standard time facility. During a backward
// clock transition a wall time maps to two instants and the Choose policy
// picks one; the strict conversions fail instead. During a forward gap the
// conversion maps the wall time ahead by the gap length, by interpreting it
// at the pre-transition offset (02:30 in a 02:00 to 03:00 gap lands on
// 03:30 local), and both policies return that instant. A nil zone is
// rejected with a null-zone failure before any conversion runs.
package tz
