package cli

import (
	"strings"
	"testing"

	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/store"
	"github.com/inkwellcms/inkwell/internal/testutil"
)

func TestCommentDeleteMovesToTrash(t *testing.T) {
	s := setupTestEnv(t)
	postID := testutil.SeedPost(t, s, "Post")
	id := testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Content: "bye"})

	stdout, _, err := runCLI(t, "comment", "delete", "1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(stdout, "Deleted comment 1.") {
		t.Errorf("unexpected output: %q", stdout)
	}

	status, found, err := s.Comments.GetStatus(id)
	if err != nil || !found {
		t.Fatalf("comment gone after soft delete: %v", err)
	}
	if status != domain.StatusTrash {
		t.Errorf("status = %q, want trash", status)
	}
}

func TestCommentDeleteForce(t *testing.T) {
	s := setupTestEnv(t)
	postID := testutil.SeedPost(t, s, "Post")
	id := testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Content: "gone"})

	_, _, err := runCLI(t, "comment", "delete", "1", "--force")
	if err != nil {
		t.Fatalf("delete --force failed: %v", err)
	}

	if _, found, _ := s.Comments.GetStatus(id); found {
		t.Error("comment still present after forced delete")
	}
}

func TestCommentDeleteMissing(t *testing.T) {
	setupTestEnv(t)

	_, _, err := runCLI(t, "comment", "delete", "99", "--force")
	if err == nil {
		t.Fatal("expected error deleting missing comment")
	}
	if !strings.Contains(err.Error(), "could not delete comment 99") {
		t.Errorf("unexpected error: %v", err)
	}
}
