package tzdb

//go:generate go run go.uber.org/mock/mockgen -source=./tzdb.go -destination=./mocks/tzdb_mock.go -package=mocks

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tzbridge/config"
	"tzbridge/shared/failure"
)

// Provider is the lookup surface of a zone database. *DB implements it;
// tests substitute their own.
type Provider interface {
	Locate(name string) (*time.Location, error)
	Current() (*time.Location, error)
}

// Zone describes one entry of the database listing. Rules stay inside the
// *time.Location returned by Locate; a Zone carries only the name and, for
// entries the host ships as symlinks, the canonical target.
type Zone struct {
	Name   string
	IsLink bool
	Target string
}

// DB is a handle over the host's zone database. The zero value is not
// usable; construct with New. A DB holds no rule data, only the search
// path and a cached name listing that Reload discards.
type DB struct {
	defaultZone string
	dirs        []string
	configured  bool

	mu    sync.Mutex
	zones []Zone
}

// Common locations of the zoneinfo directory.
var defaultDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
}

var _ Provider = (*DB)(nil)

// New returns a database handle for the given configuration. A nil config
// means no default zone override and the standard zoneinfo search path.
func New(cfg *config.Config) *DB {
	db := &DB{dirs: defaultDirs}

	if cfg != nil {
		db.defaultZone = cfg.App.Timezone

		if len(cfg.App.ZoneinfoDirs) > 0 {
			db.dirs = cfg.App.ZoneinfoDirs
			db.configured = true
		}
	}

	return db
}

// Locate resolves an IANA zone name to its zone record. The record is owned
// by the time facility and shared between callers; it is never copied and
// never nil when the error is nil.
func (db *DB) Locate(name string) (*time.Location, error) {
	if name == "" {
		return nil, failure.Invalid("empty zone name")
	}

	if strings.HasPrefix(name, "/") || strings.Contains(name, "..") {
		return nil, failure.Invalid("zone name must be a plain IANA identifier: " + name)
	}

	loc, err := db.load(name)
	if err != nil {
		return nil, failure.ZoneNotFound(name, err)
	}

	if loc == nil {
		return nil, failure.NullZonePointer
	}

	return loc, nil
}

// load consults the configured search path first so that an overridden
// ZoneinfoDirs wins over the facility's own lookup order.
func (db *DB) load(name string) (*time.Location, error) {
	if db.configured {
		for _, dir := range db.dirs {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				continue
			}

			return time.LoadLocationFromTZData(name, data)
		}
	}

	return time.LoadLocation(name)
}

// Current returns the zone the process runs in: the configured default zone
// when set, otherwise the TZ environment variable (set-but-empty means
// UTC), otherwise the runtime's local zone. It fails with a null-zone or
// not-found condition only when the facility cannot produce a zone.
func (db *DB) Current() (*time.Location, error) {
	if db.defaultZone != "" {
		return db.Locate(db.defaultZone)
	}

	if tz, found := os.LookupEnv("TZ"); found {
		if tz == "" {
			return time.UTC, nil
		}

		return db.Locate(tz)
	}

	loc := time.Local
	if loc == nil {
		return nil, failure.NullZonePointer
	}

	return loc, nil
}

// Now returns the current instant rendered in the current zone.
func (db *DB) Now() (time.Time, error) {
	loc, err := db.Current()
	if err != nil {
		return time.Time{}, err
	}

	return time.Now().In(loc), nil
}

// Zones enumerates the database. The listing is scanned lazily on first use
// and kept until Reload.
func (db *DB) Zones() ([]Zone, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.zones == nil {
		zones, err := db.scan()
		if err != nil {
			return nil, err
		}

		db.zones = zones
	}

	return slices.Clone(db.zones), nil
}

// Links returns the subset of the listing the host exposes as aliases.
func (db *DB) Links() ([]Zone, error) {
	zones, err := db.Zones()
	if err != nil {
		return nil, err
	}

	var links []Zone
	for _, z := range zones {
		if z.IsLink {
			links = append(links, z)
		}
	}

	return links, nil
}

// Version reports the tzdata release the host database ships, read from its
// +VERSION file, or "unknown" when the host does not provide one.
func (db *DB) Version() string {
	for _, dir := range db.dirs {
		data, err := os.ReadFile(filepath.Join(dir, "+VERSION"))
		if err != nil {
			continue
		}

		return strings.TrimSpace(string(data))
	}

	return "unknown"
}

// Reload discards the cached listing and re-scans the database. Zone
// records themselves are re-read from disk by the facility on every Locate,
// so a tzdata upgrade is picked up without restarting the process.
func (db *DB) Reload() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	zones, err := db.scan()
	if err != nil {
		return errors.Wrap(err, "reloading time zone database")
	}

	db.zones = zones

	log.Info().
		Int("zones", len(zones)).
		Str("version", db.Version()).
		Msg("Time zone database reloaded")

	return nil
}

// scan walks the first zoneinfo directory that exists and validates every
// candidate through the facility before reporting it, so metadata files
// (+VERSION, zone.tab, leapseconds, ...) and broken entries never appear in
// the listing.
func (db *DB) scan() ([]Zone, error) {
	for _, dir := range db.dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		zones, err := scanDir(dir)
		if err != nil {
			return nil, err
		}

		if len(zones) > 0 {
			return zones, nil
		}
	}

	return nil, errors.New("no zoneinfo directory found on this host")
}

func scanDir(dir string) ([]Zone, error) {
	var zones []Zone

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := strings.TrimPrefix(strings.TrimPrefix(path, dir), "/")

		if entry.IsDir() {
			// posix/ and right/ duplicate the whole tree with alternate
			// leap-second handling.
			if name == "posix" || name == "right" {
				return fs.SkipDir
			}

			return nil
		}

		if name == "posixrules" || name == "localtime" {
			return nil
		}

		// Validate against the file itself so that a configured
		// non-standard directory enumerates the same way the standard
		// path does.
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		if _, err := time.LoadLocationFromTZData(name, data); err != nil {
			return nil
		}

		zone := Zone{Name: name}

		if info, err := os.Lstat(path); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			if target, err := os.Readlink(path); err == nil {
				resolved := target
				if !filepath.IsAbs(resolved) {
					resolved = filepath.Join(filepath.Dir(path), target)
				}

				// A target outside the scanned directory is not another
				// zone of this database; list the entry as a plain zone.
				rel, err := filepath.Rel(dir, resolved)
				if err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
					zone.IsLink = true
					zone.Target = rel
				}
			}
		}

		zones = append(zones, zone)

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scanning zoneinfo directory %s", dir)
	}

	sort.Slice(zones, func(i, j int) bool { return zones[i].Name < zones[j].Name })

	return zones, nil
}
