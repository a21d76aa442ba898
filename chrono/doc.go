// Package chrono re-exports the calendrical and formatting surface of the
// time facility for call sites written against the legacy date/time API:
// calendar field compositions (YearMonthDay, YearMonthWeekday, HHMMSS),
// duration and time rounding (Floor, Ceil, Round, Abs), zoned-time
// constructors, and formatting/parsing in both Go reference layouts and
// C-style strftime flags.
//
// Everything here is a pass-through: same arguments, same results, same
// failure behavior as the facility underneath. The strftime-flag routines
// delegate to dedicated libraries rather than reimplementing the flag
// grammar.
package chrono
