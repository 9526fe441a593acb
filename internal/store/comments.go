package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/inkwellcms/inkwell/internal/domain"
	"github.com/inkwellcms/inkwell/internal/events"
	"github.com/sirupsen/logrus"
)

// CommentStore handles comment persistence operations.
type CommentStore struct {
	store *Store
}

// commentColumns is the SELECT column list scanComment expects.
const commentColumns = `id, uuid, post_id, parent_id, author, author_email,
	author_url, author_ip, content, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	var updatedAt sql.NullString

	err := row.Scan(&c.ID, &c.UUID, &c.PostID, &c.ParentID, &c.Author, &c.AuthorEmail,
		&c.AuthorURL, &c.AuthorIP, &c.Content, &c.Status, &c.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.String
	}

	return &c, nil
}

// InsertParams contains parameters for the low-level comment insert.
// It bypasses every moderation side effect: no event is logged.
type InsertParams struct {
	PostID      int64
	ParentID    int64
	Author      string
	AuthorEmail string
	AuthorURL   string
	AuthorIP    string
	Content     string
	Status      domain.Status // defaults to hold
	CreatedAt   string        // optional, store clock when empty
}

// InsertResult contains the identifiers assigned to a new comment.
type InsertResult struct {
	ID   int64
	UUID string
}

// Insert performs the low-level comment insert. Callers are responsible
// for validating the referenced post first.
func (cs *CommentStore) Insert(params InsertParams) (*InsertResult, error) {
	status := params.Status
	if status == "" {
		status = domain.StatusHold
	}

	commentUUID := uuid.New().String()

	var result *InsertResult
	err := cs.store.withTx(func(tx *sql.Tx, _ *events.Writer) error {
		var res sql.Result
		var err error

		if params.CreatedAt != "" {
			res, err = tx.Exec(`
				INSERT INTO comments (uuid, post_id, parent_id, author, author_email, author_url, author_ip, content, status, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, commentUUID, params.PostID, params.ParentID, params.Author, params.AuthorEmail,
				params.AuthorURL, params.AuthorIP, params.Content, status, params.CreatedAt)
		} else {
			res, err = tx.Exec(`
				INSERT INTO comments (uuid, post_id, parent_id, author, author_email, author_url, author_ip, content, status)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, commentUUID, params.PostID, params.ParentID, params.Author, params.AuthorEmail,
				params.AuthorURL, params.AuthorIP, params.Content, status)
		}
		if err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read new comment id: %w", err)
		}

		result = &InsertResult{ID: id, UUID: commentUUID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"comment_id": result.ID,
		"post_id":    params.PostID,
	}).Debug("inserted comment")

	return result, nil
}

// Get fetches a comment by id. Returns a NotFoundError if the id does
// not exist.
func (cs *CommentStore) Get(id int64) (*domain.Comment, error) {
	row := cs.store.db.QueryRow(
		"SELECT "+commentColumns+" FROM comments WHERE id = ?", id)

	comment, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Resource: "comment", Ref: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment %d: %w", id, err)
	}

	return comment, nil
}

// Delete removes a comment. With force the row is deleted permanently;
// otherwise it moves to trash. Returns whether anything changed.
func (cs *CommentStore) Delete(id int64, force bool) (bool, error) {
	if !force {
		return cs.Trash(id)
	}

	res, err := cs.store.db.Exec("DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected > 0 {
		logrus.WithField("comment_id", id).Debug("deleted comment")
	}

	return affected > 0, nil
}

// Trash moves a comment to trash, remembering its prior status for
// restore. Already-trashed comments report false.
func (cs *CommentStore) Trash(id int64) (bool, error) {
	return cs.bury(id, domain.StatusTrash)
}

// Untrash restores a trashed comment to its prior status (hold when
// unknown). Comments not in trash report false.
func (cs *CommentStore) Untrash(id int64) (bool, error) {
	return cs.restore(id, domain.StatusTrash)
}

// Spam marks a comment as spam, remembering its prior status.
func (cs *CommentStore) Spam(id int64) (bool, error) {
	return cs.bury(id, domain.StatusSpam)
}

// Unspam restores a spammed comment to its prior status.
func (cs *CommentStore) Unspam(id int64) (bool, error) {
	return cs.restore(id, domain.StatusSpam)
}

func (cs *CommentStore) bury(id int64, to domain.Status) (bool, error) {
	res, err := cs.store.db.Exec(`
		UPDATE comments
		SET prev_status = status,
		    status = ?,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%SZ','now')
		WHERE id = ? AND status != ?
	`, to, id, to)
	if err != nil {
		return false, fmt.Errorf("failed to set comment %d to %s: %w", id, to, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected > 0 {
		logrus.WithFields(logrus.Fields{"comment_id": id, "status": to}).Debug("comment status transition")
	}

	return affected > 0, nil
}

func (cs *CommentStore) restore(id int64, from domain.Status) (bool, error) {
	res, err := cs.store.db.Exec(`
		UPDATE comments
		SET status = COALESCE(prev_status, 'hold'),
		    prev_status = NULL,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%SZ','now')
		WHERE id = ? AND status = ?
	`, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to restore comment %d from %s: %w", id, from, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected > 0 {
		logrus.WithFields(logrus.Fields{"comment_id": id, "from": from}).Debug("comment restored")
	}

	return affected > 0, nil
}

// SetStatus sets a comment's status directly. With notify, the change
// is appended to the event log for downstream moderation notifiers.
func (cs *CommentStore) SetStatus(id int64, status domain.Status, notify bool) error {
	return cs.store.withTx(func(tx *sql.Tx, ew *events.Writer) error {
		var current domain.Status
		err := tx.QueryRow("SELECT status FROM comments WHERE id = ?", id).Scan(&current)
		if err == sql.ErrNoRows {
			return &domain.NotFoundError{Resource: "comment", Ref: strconv.FormatInt(id, 10)}
		}
		if err != nil {
			return fmt.Errorf("failed to read status of comment %d: %w", id, err)
		}

		if current == status {
			// Nothing to change, and nothing to notify about
			return nil
		}

		_, err = tx.Exec(`
			UPDATE comments
			SET status = ?,
			    prev_status = NULL,
			    updated_at = strftime('%Y-%m-%dT%H:%M:%SZ','now')
			WHERE id = ?
		`, status, id)
		if err != nil {
			return fmt.Errorf("failed to set status of comment %d: %w", id, err)
		}

		if notify {
			if err := ew.LogStatusChanged(tx, id, current, status); err != nil {
				return err
			}
		}

		logrus.WithFields(logrus.Fields{"comment_id": id, "from": current, "to": status}).Debug("comment status set")
		return nil
	})
}

// GetStatus returns a comment's status and whether the comment exists.
// A missing comment is a distinguished result, not an error.
func (cs *CommentStore) GetStatus(id int64) (domain.Status, bool, error) {
	var status domain.Status
	err := cs.store.db.QueryRow("SELECT status FROM comments WHERE id = ?", id).Scan(&status)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read status of comment %d: %w", id, err)
	}

	return status, true, nil
}

// Count returns the per-status comment counts for one post, or for the
// whole site when postID is 0. Every status appears in the summary,
// zero or not, along with the cumulative total (approved + hold; spam
// and trash are excluded from public totals).
func (cs *CommentStore) Count(postID int64) (domain.CountSummary, error) {
	query := "SELECT status, COUNT(*) FROM comments"
	var args []interface{}
	if postID > 0 {
		query += " WHERE post_id = ?"
		args = append(args, postID)
	}
	query += " GROUP BY status"

	rows, err := cs.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	defer rows.Close()

	summary := domain.CountSummary{}
	for _, status := range domain.Statuses {
		summary[string(status)] = 0
	}

	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		summary[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating count rows: %w", err)
	}

	summary[domain.TotalKey] = summary[string(domain.StatusApproved)] + summary[string(domain.StatusHold)]

	return summary, nil
}

// Recent returns the most recent comments with the given status,
// newest first, at most limit rows.
func (cs *CommentStore) Recent(status domain.Status, limit int) ([]domain.Comment, error) {
	rows, err := cs.store.db.Query(
		"SELECT "+commentColumns+" FROM comments WHERE status = ? ORDER BY created_at DESC, id DESC LIMIT ?",
		status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent comments: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

// ListOptions filters a comment listing.
type ListOptions struct {
	Status domain.Status // all statuses when empty
	PostID int64         // all posts when 0
	Limit  int           // no limit when 0
}

// List returns comments matching the options, newest first.
func (cs *CommentStore) List(opts ListOptions) ([]domain.Comment, error) {
	query := "SELECT " + commentColumns + " FROM comments"
	var conds []string
	var args []interface{}

	if opts.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, opts.Status)
	}
	if opts.PostID > 0 {
		conds = append(conds, "post_id = ?")
		args = append(args, opts.PostID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := cs.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func collectComments(rows *sql.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}

// UpdateParams contains the mutable comment fields. Nil pointers leave
// the field untouched.
type UpdateParams struct {
	PostID      *int64
	ParentID    *int64
	Author      *string
	AuthorEmail *string
	AuthorURL   *string
	AuthorIP    *string
	Content     *string
	Status      *domain.Status
}

// Update mutates a comment's fields and logs a comment.updated event.
// Returns a NotFoundError if the comment does not exist.
func (cs *CommentStore) Update(id int64, params UpdateParams) error {
	var sets []string
	var args []interface{}
	changes := map[string]interface{}{}

	set := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
		changes[column] = value
	}

	if params.PostID != nil {
		set("post_id", *params.PostID)
	}
	if params.ParentID != nil {
		set("parent_id", *params.ParentID)
	}
	if params.Author != nil {
		set("author", *params.Author)
	}
	if params.AuthorEmail != nil {
		set("author_email", *params.AuthorEmail)
	}
	if params.AuthorURL != nil {
		set("author_url", *params.AuthorURL)
	}
	if params.AuthorIP != nil {
		set("author_ip", *params.AuthorIP)
	}
	if params.Content != nil {
		set("content", *params.Content)
	}
	if params.Status != nil {
		set("status", *params.Status)
	}

	if len(sets) == 0 {
		return fmt.Errorf("no fields to update")
	}

	return cs.store.withTx(func(tx *sql.Tx, ew *events.Writer) error {
		var exists int
		err := tx.QueryRow("SELECT COUNT(*) FROM comments WHERE id = ?", id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check comment %d: %w", id, err)
		}
		if exists == 0 {
			return &domain.NotFoundError{Resource: "comment", Ref: strconv.FormatInt(id, 10)}
		}

		query := "UPDATE comments SET " + strings.Join(sets, ", ") +
			", updated_at = strftime('%Y-%m-%dT%H:%M:%SZ','now') WHERE id = ?"
		if _, err := tx.Exec(query, append(args, id)...); err != nil {
			return fmt.Errorf("failed to update comment %d: %w", id, err)
		}

		return ew.LogCommentUpdated(tx, id, changes)
	})
}
