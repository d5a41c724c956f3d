package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyRecordsMigrations(t *testing.T) {
	db := openMemoryDB(t)

	migrations := fstest.MapFS{
		"001_sessions.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE web_sessions(session_id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE web_sessions;"),
		},
	}
	if err := Apply(context.Background(), db, migrations, ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("migration rows = %d, want 1", got)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'web_sessions'"); got != 1 {
		t.Fatalf("web_sessions table missing")
	}
}

func TestApplySkipsAppliedMigrations(t *testing.T) {
	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"001_sessions.sql": &fstest.MapFile{Data: []byte("CREATE TABLE web_sessions(session_id TEXT PRIMARY KEY);")},
	}
	for i := 0; i < 2; i++ {
		if err := Apply(context.Background(), db, migrations, "."); err != nil {
			t.Fatalf("Apply() run %d error = %v", i, err)
		}
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("migration rows = %d, want 1", got)
	}
}

func TestApplyRunsInFilenameOrder(t *testing.T) {
	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"migrations/002_index.sql": &fstest.MapFile{Data: []byte("CREATE INDEX idx_sessions_user ON web_sessions(user_id);")},
		"migrations/001_table.sql": &fstest.MapFile{Data: []byte("CREATE TABLE web_sessions(session_id TEXT PRIMARY KEY, user_id TEXT);")},
		"migrations/README.md":     &fstest.MapFile{Data: []byte("not sql")},
	}
	if err := Apply(context.Background(), db, migrations, "migrations"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("migration rows = %d, want 2", got)
	}
}

func TestApplyRejectsMissingInputs(t *testing.T) {
	if err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected nil db error")
	}
	db := openMemoryDB(t)
	if err := Apply(context.Background(), db, nil, ""); err == nil {
		t.Fatal("expected nil fs error")
	}
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(id TEXT);", want: "CREATE TABLE a(id TEXT);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(id TEXT);", want: "\nCREATE TABLE a(id TEXT);"},
		{name: "up and down", content: "-- +migrate Up\nCREATE TABLE a(id TEXT);\n-- +migrate Down\nDROP TABLE a;", want: "\nCREATE TABLE a(id TEXT);\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := UpSection(tc.content); got != tc.want {
				t.Fatalf("UpSection() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	t.Parallel()

	if IsAlreadyExistsError(nil) {
		t.Fatal("nil error must not match")
	}
	if !IsAlreadyExistsError(errors.New("table web_sessions already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: user_json")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) {
		t.Fatal("unexpected match")
	}
}

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var count int64
	if err := db.QueryRow(query).Scan(&count); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return count
}
