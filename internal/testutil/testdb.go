package testutil

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"holdem-dealer/internal/config"
	"holdem-dealer/internal/store"

	"github.com/jackc/pgx/v5"
)

// OpenTestStore gives the test its own Postgres schema with every
// migration applied and returns a store bound to it. Tests skip when
// TEST_POSTGRES_DSN is unset; TEST_KEEP_SCHEMA leaves the schema behind.
func OpenTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()
	cfg, err := config.LoadTest()
	if err != nil {
		t.Skipf("skip test db: %v", err)
	}
	ctx := context.Background()

	admin, err := pgx.Connect(ctx, cfg.TestPostgresDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	schema := pgx.Identifier{"journal_" + strings.ToLower(store.NewID())}.Sanitize()
	if _, err := admin.Exec(ctx, "CREATE SCHEMA "+schema); err != nil {
		_ = admin.Close(ctx)
		t.Fatalf("create schema: %v", err)
	}

	st, err := store.New(withSearchPath(cfg.TestPostgresDSN, strings.Trim(schema, `"`)))
	if err != nil {
		_ = admin.Close(ctx)
		t.Fatalf("open store: %v", err)
	}
	if err := Migrate(ctx, st); err != nil {
		st.Close()
		_ = admin.Close(ctx)
		t.Fatalf("migrate: %v", err)
	}

	return st, func() {
		st.Close()
		defer admin.Close(ctx)
		if cfg.KeepSchema {
			t.Logf("keeping test schema %s", schema)
			return
		}
		_, _ = admin.Exec(ctx, "DROP SCHEMA "+schema+" CASCADE")
	}
}

// Migrate applies every migrations/*.up.sql in name order and checks that
// the journal table exists afterwards.
func Migrate(ctx context.Context, st *store.Store) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := UpMigrations(dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := st.Pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
	}
	var ok bool
	if err := st.Pool.QueryRow(ctx, `SELECT to_regclass('table_moves') IS NOT NULL`).Scan(&ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("table_moves missing after %d migrations", len(files))
	}
	return nil
}

// UpMigrations lists the up migrations in dir, oldest first.
func UpMigrations(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no up migrations in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

// migrationsDir walks up from the package directory to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		p := filepath.Join(dir, "migrations")
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory not found")
		}
		dir = parent
	}
}

func withSearchPath(dsn, schema string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "search_path=" + url.QueryEscape(schema)
}
