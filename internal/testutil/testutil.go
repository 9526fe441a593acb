package testutil

import (
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/inkwellcms/inkwell/internal/db"
	"github.com/inkwellcms/inkwell/internal/store"
)

// TempDB creates a temporary, fully migrated database for testing.
func TempDB(t *testing.T) (*db.DB, string) {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if _, err := database.Migrate(); err != nil {
		database.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database, dbPath
}

// TempStore creates a store over a temporary migrated database.
func TempStore(t *testing.T) (*store.Store, string) {
	t.Helper()

	database, dbPath := TempDB(t)
	return store.New(database), dbPath
}

// SeedPost inserts a post row and returns its id.
func SeedPost(t *testing.T, s *store.Store, title string) int64 {
	t.Helper()

	id, err := s.Posts.Create(title)
	if err != nil {
		t.Fatalf("Failed to seed post: %v", err)
	}
	return id
}

// SeedComment inserts a comment row and returns its id.
func SeedComment(t *testing.T, s *store.Store, params store.InsertParams) int64 {
	t.Helper()

	res, err := s.Comments.Insert(params)
	if err != nil {
		t.Fatalf("Failed to seed comment: %v", err)
	}
	return res.ID
}

// AssertTextEqual compares multi-line output and fails with a unified
// diff when it differs.
func AssertTextEqual(t *testing.T, want, got string) {
	t.Helper()

	if want == got {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("Output mismatch (diff failed: %v)\nwant:\n%s\ngot:\n%s", err, want, got)
	}

	t.Fatalf("Output mismatch:\n%s", diff)
}
