package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/inkwellcms/inkwell/internal/cli/appctx"
	"github.com/inkwellcms/inkwell/internal/output"
	"github.com/inkwellcms/inkwell/internal/store"
	"github.com/inkwellcms/inkwell/internal/testutil"
)

// setupTestEnv creates a migrated temp database, points the CLI at it,
// and returns a store for seeding and verification.
func setupTestEnv(t *testing.T) *store.Store {
	t.Helper()

	s, dbPath := testutil.TempStore(t)
	t.Setenv("INKWELL_DB_PATH", dbPath)
	return s
}

// runCLI executes the root command with the given args and captures its
// output streams.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores flag-bound package vars to their defaults so one
// test's flags do not leak into the next.
func resetFlags() {
	commentCreatePorcelain = false
	commentDeleteForce = false
	commentLastID = false
	commentLastFull = false
	commentListStatus = ""
	commentListPostID = 0
	commentListLimit = 0
	commentListFormat = "table"
	commentListFields = ""
	commentGetFormat = "plain"
	commentGetFields = ""
}

// bootstrapForTest builds an App backed by the given store with output
// discarded, for exercising command internals directly.
func bootstrapForTest(t *testing.T, s *store.Store) *appctx.App {
	t.Helper()
	return &appctx.App{
		Store:   s,
		Printer: output.NewPrinter(io.Discard, io.Discard, false),
	}
}
