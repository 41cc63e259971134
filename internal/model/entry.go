package model

import "time"

// MaxTitleLength is the maximum allowed length for an entry title.
const MaxTitleLength = 200

// Entry represents a single journal record owned by one user.
// CreatedAt is assigned by the server at creation and never changes.
type Entry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
