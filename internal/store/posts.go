package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/sirupsen/logrus"
)

// PostStore handles the post lookups this tool needs. Posts themselves
// are managed elsewhere in the CMS.
type PostStore struct {
	store *Store
}

// Get fetches a post by id. Returns a NotFoundError if absent.
func (ps *PostStore) Get(id int64) (*domain.Post, error) {
	var p domain.Post
	err := ps.store.db.QueryRow(
		"SELECT id, title, status, comment_count, created_at FROM posts WHERE id = ?", id,
	).Scan(&p.ID, &p.Title, &p.Status, &p.CommentCount, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Resource: "post", Ref: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post %d: %w", id, err)
	}

	return &p, nil
}

// Create inserts a post row. Seeding and tests only.
func (ps *PostStore) Create(title string) (int64, error) {
	res, err := ps.store.db.Exec("INSERT INTO posts (title) VALUES (?)", title)
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new post id: %w", err)
	}

	return id, nil
}

// Recount recomputes a post's cached approved-comment count. Returns
// the previous and new counts.
func (ps *PostStore) Recount(id int64) (old, updated int64, err error) {
	err = ps.store.db.QueryRow("SELECT comment_count FROM posts WHERE id = ?", id).Scan(&old)
	if err == sql.ErrNoRows {
		return 0, 0, &domain.NotFoundError{Resource: "post", Ref: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read comment count of post %d: %w", id, err)
	}

	err = ps.store.db.QueryRow(
		"SELECT COUNT(*) FROM comments WHERE post_id = ? AND status = ?", id, domain.StatusApproved,
	).Scan(&updated)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count comments of post %d: %w", id, err)
	}

	if updated != old {
		if _, err := ps.store.db.Exec("UPDATE posts SET comment_count = ? WHERE id = ?", updated, id); err != nil {
			return 0, 0, fmt.Errorf("failed to update comment count of post %d: %w", id, err)
		}
		logrus.WithFields(logrus.Fields{"post_id": id, "old": old, "new": updated}).Debug("recounted post comments")
	}

	return old, updated, nil
}
