package cli

import (
	"strings"
	"testing"

	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/store"
	"github.com/inkwellcms/inkwell/internal/testutil"
)

func TestRecountUpdatesDriftedCount(t *testing.T) {
	s := setupTestEnv(t)
	postID := testutil.SeedPost(t, s, "Post")
	// Low-level inserts leave the cached count behind.
	testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Status: domain.StatusApproved})
	testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Status: domain.StatusApproved})
	testutil.SeedComment(t, s, store.InsertParams{PostID: postID, Status: domain.StatusHold})

	stdout, _, err := runCLI(t, "comment", "recount", "1")
	if err != nil {
		t.Fatalf("recount failed: %v", err)
	}
	if !strings.Contains(stdout, "Updated post 1 comment count from 0 to 2.") {
		t.Errorf("output = %q", stdout)
	}

	post, err := s.Posts.Get(postID)
	if err != nil {
		t.Fatal(err)
	}
	if post.CommentCount != 2 {
		t.Errorf("comment_count = %d, want 2", post.CommentCount)
	}
}

func TestRecountNoChange(t *testing.T) {
	s := setupTestEnv(t)
	testutil.SeedPost(t, s, "Post")

	stdout, _, err := runCLI(t, "comment", "recount", "1")
	if err != nil {
		t.Fatalf("recount failed: %v", err)
	}
	if !strings.Contains(stdout, "Post 1 comment count is 0, no change.") {
		t.Errorf("output = %q", stdout)
	}
}

func TestRecountMultiplePosts(t *testing.T) {
	s := setupTestEnv(t)
	first := testutil.SeedPost(t, s, "First")
	testutil.SeedPost(t, s, "Second")
	testutil.SeedComment(t, s, store.InsertParams{PostID: first, Status: domain.StatusApproved})

	stdout, _, err := runCLI(t, "comment", "recount", "1", "2")
	if err != nil {
		t.Fatalf("recount failed: %v", err)
	}
	if !strings.Contains(stdout, "Updated post 1 comment count from 0 to 1.") {
		t.Errorf("output = %q", stdout)
	}
	if !strings.Contains(stdout, "Post 2 comment count is 0, no change.") {
		t.Errorf("output = %q", stdout)
	}
}

func TestRecountMissingPost(t *testing.T) {
	setupTestEnv(t)

	_, _, err := runCLI(t, "comment", "recount", "9")
	if err == nil {
		t.Fatal("expected error for missing post")
	}
	if !strings.Contains(err.Error(), "post 9 not found") {
		t.Errorf("error = %q", err.Error())
	}
}
