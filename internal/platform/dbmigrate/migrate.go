package dbmigrate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var defaultDirs = []string{
	"./db/migrations",
	"../db/migrations",
	"../../db/migrations",
	"../../../db/migrations",
	"../../../../db/migrations",
	"/app/db/migrations",
}

// Migrator runs file based schema migrations against one database.
type Migrator struct {
	m      *migrate.Migrate
	Source string
}

func Open(dbURL, dir string) (*Migrator, error) {
	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return nil, errors.Wrapf(err, "create migrator source=%s", sourceURL)
	}
	return &Migrator{m: m, Source: sourceURL}, nil
}

// Up applies every pending migration. No pending change is not an error.
func (m *Migrator) Up() error {
	return ignoreNoChange(m.m.Up())
}

func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		return errors.New("down steps must be > 0")
	}
	return ignoreNoChange(m.m.Steps(-steps))
}

func (m *Migrator) Goto(version uint) error {
	return ignoreNoChange(m.m.Migrate(version))
}

func (m *Migrator) Force(version int) error {
	return errors.Wrapf(m.m.Force(version), "force version %d", version)
}

// Version reports the applied version; ok is false on an empty database.
func (m *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, errors.Wrap(err, "read migration version")
	}
	return version, dirty, true, nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		return errors.Wrap(srcErr, "close migration source")
	}
	if dbErr != nil {
		return errors.Wrap(dbErr, "close migration db")
	}
	return nil
}

// ResolveDir returns the first existing directory among the explicit
// candidates, MIGRATIONS_DIR, and the usual repository relative paths.
func ResolveDir(candidates ...string) (string, error) {
	all := append(append([]string(nil), candidates...), strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")))
	all = append(all, defaultDirs...)

	for _, candidate := range all {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", errors.New("migration directory not found (checked MIGRATIONS_DIR and db/migrations)")
}

func ignoreNoChange(err error) error {
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return errors.Wrap(err, "run migrations")
}
