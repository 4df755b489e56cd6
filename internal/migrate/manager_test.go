package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	in := `create table users (id text primary key);
insert into users(id) values ('semi;colon');
`
	stmts := splitStatements(in)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(stmts), stmts)
	}
	if want := "insert into users(id) values ('semi;colon');"; strings.TrimSpace(stmts[1]) != want {
		t.Fatalf("semicolon inside string literal split the statement: %q", stmts[1])
	}
}

func TestCollectSQLOrdersAndFilters(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"0002_add_band_id.up.sql",
		"0001_create_users.up.sql",
		"0001_create_users.down.sql",
		"README.md",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("select 1;"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := collectSQL(dir, ".up.sql")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 up files, got %d", len(files))
	}
	if files[0].base != "0001_create_users.up.sql" || files[1].base != "0002_add_band_id.up.sql" {
		t.Fatalf("wrong order: %v", files)
	}
}

func TestCollectSQLMissingDir(t *testing.T) {
	files, err := collectSQL(filepath.Join(t.TempDir(), "nope"), ".up.sql")
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %v", files)
	}
}
