package store_test

import (
	"errors"
	"testing"

	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/store"
	"github.com/inkwellcms/inkwell/internal/testutil"
)

func TestPostGet(t *testing.T) {
	s, _ := testutil.TempStore(t)
	id := testutil.SeedPost(t, s, "Hello world")

	post, err := s.Posts.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if post.Title != "Hello world" {
		t.Errorf("title = %q", post.Title)
	}
	if post.CommentCount != 0 {
		t.Errorf("new post comment_count = %d", post.CommentCount)
	}

	_, err = s.Posts.Get(999)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Resource != "post" {
		t.Errorf("NotFoundError resource = %q, want post", nf.Resource)
	}
}

func TestPostRecount(t *testing.T) {
	s, _ := testutil.TempStore(t)
	id := testutil.SeedPost(t, s, "Post")

	testutil.SeedComment(t, s, store.InsertParams{PostID: id, Status: domain.StatusApproved})
	testutil.SeedComment(t, s, store.InsertParams{PostID: id, Status: domain.StatusApproved})
	testutil.SeedComment(t, s, store.InsertParams{PostID: id, Status: domain.StatusHold})
	testutil.SeedComment(t, s, store.InsertParams{PostID: id, Status: domain.StatusSpam})

	old, updated, err := s.Posts.Recount(id)
	if err != nil {
		t.Fatalf("Recount failed: %v", err)
	}
	if old != 0 {
		t.Errorf("old count = %d, want 0", old)
	}
	if updated != 2 {
		t.Errorf("new count = %d, want 2 (approved only)", updated)
	}

	post, err := s.Posts.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if post.CommentCount != 2 {
		t.Errorf("cached comment_count = %d, want 2", post.CommentCount)
	}

	// Recount of a missing post is a NotFoundError
	_, _, err = s.Posts.Recount(404)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}
