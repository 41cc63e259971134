package dto

import (
	"time"

	"github.com/wilt/wilt/internal/model"
)

// EntryRequest represents the request body for creating or replacing an entry.
type EntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EntryResponse represents an entry in API responses.
// The owner is embedded as a user object rather than a bare id.
type EntryResponse struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	User      UserResponse `json:"user"`
}

// ToEntryResponse converts an Entry model to EntryResponse.
// owner must be the entry's owner; every read path already scopes by owner.
func ToEntryResponse(entry *model.Entry, owner *model.AuthContext) *EntryResponse {
	return &EntryResponse{
		ID:        entry.ID,
		Title:     entry.Title,
		Content:   entry.Content,
		CreatedAt: entry.CreatedAt,
		User: UserResponse{
			ID:       owner.UserID,
			Username: owner.Username,
		},
	}
}

// ToEntryListResponse converts a slice of Entry models to response objects.
// The list endpoint returns a plain array, not a pagination envelope.
func ToEntryListResponse(entries []*model.Entry, owner *model.AuthContext) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *ToEntryResponse(entry, owner)
	}
	return responses
}
