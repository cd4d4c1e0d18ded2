package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is an application user, referenced as the identity behind logins and
// share grants.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Name         string       `json:"name"`
	Email        string       `json:"email"` // Unique
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	AuthProvider AuthProvider `json:"-"`
	CreatedAt    time.Time    `json:"createdAt"`
}
