package model

import "time"

// Item status lifecycle. An item starts out pending and moves freely
// between statuses; nothing forbids a regression like completed -> pending.
const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ValidStatus reports whether s is one of the known item statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusContacted, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Contact is a validated row from an uploaded file, before it is assigned
// to an agent. Contacts only exist after validation passed.
type Contact struct {
	FirstName string `json:"firstName"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// ContactItem is a contact persisted inside a distributed list. ContactedAt
// and CompletedAt are stamped the first time the item enters the matching
// status and never overwritten after that.
type ContactItem struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	Phone       string     `json:"phone"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	ContactedAt *time.Time `json:"contactedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
