package tzdb

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"tzbridge/config"
)

var (
	defaultDB *DB
	once      sync.Once
)

// Default returns the process-wide database handle, initialized lazily from
// the process configuration on first access.
func Default() *DB {
	once.Do(func() {
		defaultDB = New(config.Get())

		log.Trace().
			Str("version", defaultDB.Version()).
			Msg("Default time zone database initialized")
	})

	return defaultDB
}

// Locate resolves a zone name against the default database.
func Locate(name string) (*time.Location, error) {
	return Default().Locate(name)
}

// Current returns the process zone from the default database.
func Current() (*time.Location, error) {
	return Default().Current()
}

// Now returns the current instant in the process zone.
func Now() (time.Time, error) {
	return Default().Now()
}

// Zones enumerates the default database.
func Zones() ([]Zone, error) {
	return Default().Zones()
}

// Links enumerates the default database's aliases.
func Links() ([]Zone, error) {
	return Default().Links()
}

// Version reports the default database's tzdata release.
func Version() string {
	return Default().Version()
}

// Reload re-scans the default database.
func Reload() error {
	return Default().Reload()
}
