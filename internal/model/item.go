package model

import "time"

// Item represents a single lost/found report submitted by a student.
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	ItemDate    string    `json:"itemDate"`
	ContactInfo string    `json:"contactInfo"`
	Status      string    `json:"status"`
	PhotoMime   string    `json:"photoMime,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Categories: the board a report appears on.
const (
	CategoryLost  = "lost"
	CategoryFound = "found"
)

// Statuses. Resolved is transient: a record entering it is deleted, so it is
// never observed at rest.
const (
	StatusPending  = "pending"
	StatusClaimed  = "claimed"
	StatusResolved = "resolved"
)

// ValidCategory reports whether c is a known category.
func ValidCategory(c string) bool {
	return c == CategoryLost || c == CategoryFound
}

// ValidStatus reports whether s is a known status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusClaimed || s == StatusResolved
}
