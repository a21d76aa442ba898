// Package tzdb exposes the process-wide IANA time zone database as an
// explicit handle.
//
// Usage Examples:
//
//  1. Lookup through the process-wide default database:
//     loc, err := tzdb.Locate("Asia/Jakarta")
//
//  2. The zone the process is configured to run in:
//     loc, err := tzdb.Current()
//
//  3. Enumerating the database and refreshing it after a tzdata upgrade:
//     zones, err := tzdb.Zones()
//     err = tzdb.Reload()
//
//  4. An injectable handle for code that should not touch process state:
//     db := tzdb.New(cfg)
//     loc, err := db.Locate("Europe/London")
//
// Zone rules are owned entirely by the standard time facility; this package
// only resolves names, enumerates what the host database ships, and reports
// its version. It never parses, stores, or caches rule data.
//
// The current zone is resolved from APP_TIMEZONE when configured, then the
// TZ environment variable (set-but-empty means UTC), then the runtime's
// local zone. Use standard IANA names like "UTC", "Asia/Jakarta",
// "America/New_York" for reliable cross-platform behavior.
package tzdb
