package dbmigrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
)

func TestResolveDir_PrefersExplicitCandidate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", "")

	got, err := ResolveDir(filepath.Join(dir, "missing"), dir)
	if err != nil {
		t.Fatalf("resolve dir: %v", err)
	}
	if got != dir {
		t.Fatalf("unexpected dir: got=%s want=%s", got, dir)
	}
}

func TestResolveDir_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	got, err := ResolveDir()
	if err != nil {
		t.Fatalf("resolve dir: %v", err)
	}
	if got != dir {
		t.Fatalf("unexpected dir: got=%s want=%s", got, dir)
	}
}

func TestResolveDir_FindsRepositoryMigrations(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")

	got, err := ResolveDir()
	if err != nil {
		t.Fatalf("resolve dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(got, "20260110090000_create_draft_tables.up.sql")); err != nil {
		t.Fatalf("expected draft tables migration in %s: %v", got, err)
	}
}

func TestResolveDir_IgnoresFiles(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir.sql")
	if err := os.WriteFile(file, []byte("SELECT 1;"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("MIGRATIONS_DIR", file)

	got, err := ResolveDir(file)
	if err == nil && got == file {
		t.Fatalf("file must not be accepted as migrations dir")
	}
}

func TestIgnoreNoChange(t *testing.T) {
	if err := ignoreNoChange(migrate.ErrNoChange); err != nil {
		t.Fatalf("expected nil for no change, got %v", err)
	}
	if err := ignoreNoChange(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	boom := errors.New("boom")
	if err := ignoreNoChange(boom); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}
