package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/store"
	"github.com/inkwellcms/inkwell/internal/testutil"
)

func TestListTable(t *testing.T) {
	s := setupTestEnv(t)
	postID := testutil.SeedPost(t, s, "Post")
	testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Author: "Jane", Content: "First"})
	testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Author: "John", Content: "Second"})

	stdout, _, err := runCLI(t, "comment", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, want := range []string{"AUTHOR", "STATUS", "Jane", "John", "First", "Second"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("missing %q in:\n%s", want, stdout)
		}
	}
}

func TestListStatusFilter(t *testing.T) {
	s := setupTestEnv(t)
	postID := testutil.SeedPost(t, s, "Post")
	testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Author: "Jane", Status: domain.StatusApproved})
	testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Author: "John", Status: domain.StatusSpam})

	stdout, _, err := runCLI(t, "comment", "list", "--status", "spam")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if strings.Contains(stdout, "Jane") {
		t.Errorf("approved comment leaked into spam listing:\n%s", stdout)
	}
	if !strings.Contains(stdout, "John") {
		t.Errorf("missing spam comment in:\n%s", stdout)
	}
}

func TestListJSON(t *testing.T) {
	s := setupTestEnv(t)
	first := testutil.SeedPost(t, s, "First")
	second := testutil.SeedPost(t, s, "Second")
	testutil.SeedComment(t, s, store.InsertParams{PostID: first, Author: "Jane"})
	testutil.SeedComment(t, s, store.InsertParams{PostID: second, Author: "John"})

	stdout, _, err := runCLI(t, "comment", "list", "--format", "json", "--post-id", "2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var comments []domain.Comment
	if err := json.Unmarshal([]byte(stdout), &comments); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, stdout)
	}
	if len(comments) != 1 || comments[0].Author != "John" {
		t.Errorf("comments = %+v", comments)
	}
}

func TestListLimit(t *testing.T) {
	s := setupTestEnv(t)
	postID := testutil.SeedPost(t, s, "Post")
	for i := 0; i < 5; i++ {
		testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Author: "Someone"})
	}

	stdout, _, err := runCLI(t, "comment", "list", "--format", "json", "--limit", "2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var comments []domain.Comment
	if err := json.Unmarshal([]byte(stdout), &comments); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, stdout)
	}
	if len(comments) != 2 {
		t.Errorf("len = %d, want 2", len(comments))
	}
}

func TestListInvalidStatus(t *testing.T) {
	setupTestEnv(t)

	_, _, err := runCLI(t, "comment", "list", "--status", "banished")
	if err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestListUnknownFormat(t *testing.T) {
	setupTestEnv(t)

	_, _, err := runCLI(t, "comment", "list", "--format", "csv")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), `unknown format "csv"`) {
		t.Errorf("error = %q", err.Error())
	}
}
