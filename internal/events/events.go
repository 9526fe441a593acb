// Package events appends moderation side effects to the event log.
// Downstream notifiers consume this table; the low-level comment insert
// deliberately never writes here.
package events

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/inkwellcms/inkwell/internal/domain"
)

// Writer handles writing events to the event log
type Writer struct {
	db *sql.DB
}

// NewWriter creates a new event writer
func NewWriter(db *sql.DB) *Writer {
	return &Writer{db: db}
}

// executor abstracts over *sql.DB and *sql.Tx
type executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func (w *Writer) getExecutor(tx *sql.Tx) executor {
	if tx != nil {
		return tx
	}
	return w.db
}

// LogEvent writes an event to the event log. A fresh uuid is assigned
// to every entry.
func (w *Writer) LogEvent(tx *sql.Tx, event *domain.Event) error {
	query := `
		INSERT INTO event_log (uuid, resource_type, resource_id, event_type, payload)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := w.getExecutor(tx).Exec(query, uuid.New().String(), event.Resource, event.ResourceID, event.EventType, event.Payload)
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogStatusChanged logs a comment status change
func (w *Writer) LogStatusChanged(tx *sql.Tx, commentID int64, from, to domain.Status) error {
	payload, err := json.Marshal(map[string]interface{}{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return err
	}

	payloadStr := string(payload)
	return w.LogEvent(tx, &domain.Event{
		Resource:   "comment",
		ResourceID: commentID,
		EventType:  "comment.status_changed",
		Payload:    &payloadStr,
	})
}

// LogCommentUpdated logs a comment field update
func (w *Writer) LogCommentUpdated(tx *sql.Tx, commentID int64, changes map[string]interface{}) error {
	payload, err := json.Marshal(changes)
	if err != nil {
		return err
	}

	payloadStr := string(payload)
	return w.LogEvent(tx, &domain.Event{
		Resource:   "comment",
		ResourceID: commentID,
		EventType:  "comment.updated",
		Payload:    &payloadStr,
	})
}
