package appctx

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/inkwellcms/inkwell/internal/testutil"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("db", "", "Path to database file")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd
}

func TestBootstrapOpensMigratedDB(t *testing.T) {
	_, dbPath := testutil.TempDB(t)

	os.Setenv("INKWELL_DB_PATH", dbPath)
	defer os.Unsetenv("INKWELL_DB_PATH")

	app, err := Bootstrap(testCommand(), DefaultOptions())
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	defer app.Close()

	if app.DB == nil || app.Store == nil {
		t.Fatal("expected DB and Store to be initialized")
	}
	if app.Printer == nil {
		t.Fatal("expected Printer to be initialized")
	}
}

func TestBootstrapRejectsUnmigratedDB(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("INKWELL_DB_PATH", tmpDir+"/fresh.db")
	defer os.Unsetenv("INKWELL_DB_PATH")

	_, err := Bootstrap(testCommand(), DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for an unmigrated database")
	}
	if !strings.Contains(err.Error(), "migration") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBootstrapSkipMigrationCheck(t *testing.T) {
	tmpDir := t.TempDir()
	os.Setenv("INKWELL_DB_PATH", tmpDir+"/fresh.db")
	defer os.Unsetenv("INKWELL_DB_PATH")

	app, err := Bootstrap(testCommand(), Options{NeedsDB: true, SkipMigrationCheck: true})
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	app.Close()

	// Close is idempotent
	app.Close()
}

func TestBootstrapDBFlagOverride(t *testing.T) {
	_, dbPath := testutil.TempDB(t)

	os.Unsetenv("INKWELL_DB_PATH")

	cmd := testCommand()
	if err := cmd.Flags().Set("db", dbPath); err != nil {
		t.Fatal(err)
	}

	app, err := Bootstrap(cmd, DefaultOptions())
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	defer app.Close()

	if app.Config.DBPath != dbPath {
		t.Errorf("DBPath = %q, want %q", app.Config.DBPath, dbPath)
	}
}
