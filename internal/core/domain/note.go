package domain

import "time"

// Note is a free-form note owned by a user and optionally shared with
// others.
type Note struct {
	NoteID        string    `json:"noteID"`  // Primary Key (UUID)
	OwnerID       string    `json:"ownerID"` // FK -> users.user_id
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	IsPinned      bool      `json:"isPinned"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`

	// Access is the viewer's computed access level, set by list/get queries.
	Access AccessLevel `json:"access,omitempty"`
	Shares []Share     `json:"shares,omitempty"`
}
