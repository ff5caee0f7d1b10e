package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every supply and project in the system belongs to exactly one user.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user. It is non-sensitive and may be
	// shown in UI.
	Name string `json:"name,omitempty"`

	// Password carries the plain-text password on register/login requests
	// only. It is never persisted and never included in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. It never
	// leaves the persistence layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
