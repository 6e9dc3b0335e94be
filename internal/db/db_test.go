package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "creates new database",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "ressido.db")
			},
		},
		{
			name: "creates nested directories",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "a", "b", "ressido.db")
			},
		},
		{
			name: "opens existing database",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "ressido.db")
				d, err := Open(path)
				if err != nil {
					t.Fatalf("setup: %v", err)
				}
				if err := d.Close(); err != nil {
					t.Fatalf("setup close: %v", err)
				}
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t)

			d, err := Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer closeDB(t, d)

			if err := d.Ping(); err != nil {
				t.Errorf("ping: %v", err)
			}
		})
	}
}

func TestMigrationsCreateTables(t *testing.T) {
	d := testDB(t)

	for _, table := range []string{"properties", "settings", "tenants"} {
		var name string
		err := d.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestPhotoColumnMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ressido.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	closeDB(t, d)

	// Re-opening runs migrations again; the column add must be a no-op.
	d, err = Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer closeDB(t, d)

	if _, err := d.Exec("UPDATE properties SET photo = ''"); err != nil {
		t.Errorf("photo column unusable: %v", err)
	}
}

func TestForeignKeysEnabled(t *testing.T) {
	d := testDB(t)

	var enabled int
	if err := d.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if enabled != 1 {
		t.Error("expected foreign keys enabled")
	}
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "ressido.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { closeDB(t, d) })
	return d
}

func closeDB(t *testing.T, d *sql.DB) {
	t.Helper()
	if err := d.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
