package domain

import "time"

// SharePermission is the right a share grant confers on a non-owner.
type SharePermission string

const (
	PermissionRead  SharePermission = "read"
	PermissionWrite SharePermission = "write"
)

// Valid reports whether p is a known permission.
func (p SharePermission) Valid() bool {
	return p == PermissionRead || p == PermissionWrite
}

// AccessLevel is a viewer's computed access to a shared resource: owner if
// they created it, otherwise the permission of their share row.
type AccessLevel string

const (
	AccessOwner AccessLevel = "owner"
	AccessWrite AccessLevel = "write"
	AccessRead  AccessLevel = "read"
)

// Share grants a user access to a note or todo. Unique per
// (resource, shared-with user) pair; the permission is overwritten on
// re-share.
type Share struct {
	ShareID    string          `json:"shareID"`    // Primary Key (UUID)
	ResourceID string          `json:"resourceID"` // FK -> notes.note_id / todos.todo_id
	UserID     string          `json:"userID"`     // FK -> users.user_id (shared-with)
	Permission SharePermission `json:"permission"`
	CreatedAt  time.Time       `json:"createdAt"`

	// Populated by list queries joining the shared-with user.
	UserName string `json:"userName,omitempty"`
}
