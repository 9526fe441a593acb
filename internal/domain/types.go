package domain

import (
	"fmt"
)

// Status represents the moderation status of a comment
type Status string

const (
	StatusApproved Status = "approved"
	StatusHold     Status = "hold"
	StatusSpam     Status = "spam"
	StatusTrash    Status = "trash"
)

// Statuses lists all comment statuses in display order
var Statuses = []Status{StatusApproved, StatusHold, StatusSpam, StatusTrash}

// TotalKey is the name of the cumulative entry in a count summary.
// It always renders after the per-status entries.
const TotalKey = "total_comments"

// ParseStatus parses a status string, accepting the aliases used on
// the command line
func ParseStatus(s string) (Status, error) {
	switch s {
	case "approved", "approve":
		return StatusApproved, nil
	case "hold", "unapproved", "pending":
		return StatusHold, nil
	case "spam":
		return StatusSpam, nil
	case "trash":
		return StatusTrash, nil
	default:
		return "", fmt.Errorf("invalid status: must be one of: approved, hold, spam, trash")
	}
}

// Comment represents a comment row in the CMS database
type Comment struct {
	ID          int64   `json:"id" yaml:"id" db:"id"`
	UUID        string  `json:"uuid" yaml:"uuid" db:"uuid"`
	PostID      int64   `json:"post_id" yaml:"post_id" db:"post_id"`
	ParentID    int64   `json:"parent_id" yaml:"parent_id" db:"parent_id"`
	Author      string  `json:"author" yaml:"author" db:"author"`
	AuthorEmail string  `json:"author_email" yaml:"author_email" db:"author_email"`
	AuthorURL   string  `json:"author_url" yaml:"author_url" db:"author_url"`
	AuthorIP    string  `json:"author_ip" yaml:"author_ip" db:"author_ip"`
	Content     string  `json:"content" yaml:"content" db:"content"`
	Status      Status  `json:"status" yaml:"status" db:"status"`
	CreatedAt   string  `json:"created_at" yaml:"created_at" db:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty" yaml:"updated_at,omitempty" db:"updated_at"`
}

// CompactFields is the field subset used for compact comment display
var CompactFields = []string{"id", "author", "author_email", "author_url", "content"}

// Fields lists every displayable comment field in column order
var Fields = []string{
	"id", "uuid", "post_id", "parent_id", "author", "author_email",
	"author_url", "author_ip", "content", "status", "created_at", "updated_at",
}

// Field returns the rendered value for a named field, and whether the
// name is a known field.
func (c *Comment) Field(name string) (string, bool) {
	switch name {
	case "id":
		return fmt.Sprintf("%d", c.ID), true
	case "uuid":
		return c.UUID, true
	case "post_id":
		return fmt.Sprintf("%d", c.PostID), true
	case "parent_id":
		return fmt.Sprintf("%d", c.ParentID), true
	case "author":
		return c.Author, true
	case "author_email":
		return c.AuthorEmail, true
	case "author_url":
		return c.AuthorURL, true
	case "author_ip":
		return c.AuthorIP, true
	case "content":
		return c.Content, true
	case "status":
		return string(c.Status), true
	case "created_at":
		return c.CreatedAt, true
	case "updated_at":
		if c.UpdatedAt == nil {
			return "", true
		}
		return *c.UpdatedAt, true
	default:
		return "", false
	}
}

// Post represents the slice of a post row this tool needs
type Post struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Status       string `json:"status" db:"status"`
	CommentCount int64  `json:"comment_count" db:"comment_count"`
	CreatedAt    string `json:"created_at" db:"created_at"`
}

// CountSummary maps status names to counts for one scope. The store
// computes the total entry; display ordering is the caller's concern.
type CountSummary map[string]int64

// NotFoundError indicates a referenced comment or post is absent
type NotFoundError struct {
	Resource string // "comment" or "post"
	Ref      string // the reference exactly as given by the caller
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Ref)
}

// Event represents an entry in the event log
type Event struct {
	ID         int64   `json:"id" db:"id"`
	UUID       string  `json:"uuid" db:"uuid"`
	Resource   string  `json:"resource_type" db:"resource_type"`
	ResourceID int64   `json:"resource_id" db:"resource_id"`
	EventType  string  `json:"event_type" db:"event_type"`
	Payload    *string `json:"payload,omitempty" db:"payload"`
	CreatedAt  string  `json:"created_at" db:"created_at"`
}
