package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrateFreshDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fresh.db")
	t.Setenv("INKWELL_DB_PATH", dbPath)

	stdout, _, err := runCLI(t, "migrate")
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(stdout, "Applied 0001_init.sql") {
		t.Errorf("output = %q", stdout)
	}
	if !strings.Contains(stdout, "Applied 1 migration(s).") {
		t.Errorf("output = %q", stdout)
	}

	// Other commands work once the schema exists.
	if _, _, err := runCLI(t, "comment", "count"); err != nil {
		t.Fatalf("count after migrate failed: %v", err)
	}
}

func TestMigrateUpToDate(t *testing.T) {
	setupTestEnv(t)

	stdout, _, err := runCLI(t, "migrate")
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(stdout, "Database is up to date.") {
		t.Errorf("output = %q", stdout)
	}
}

func TestCommandsRejectUnmigratedDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fresh.db")
	t.Setenv("INKWELL_DB_PATH", dbPath)

	_, _, err := runCLI(t, "comment", "count")
	if err == nil {
		t.Fatal("expected migration gate error")
	}
	if !strings.Contains(err.Error(), "inkwell migrate") {
		t.Errorf("error = %q", err.Error())
	}
}
