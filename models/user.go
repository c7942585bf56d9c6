package models

import "time"

// User represents a librarian account used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier, 3 to 80 characters.
	Username string `json:"username"`

	// Password carries the plaintext credential on inbound requests only.
	// It is never persisted and never written to logs.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored bcrypt verifier of the password.
	// It is used only for credential verification and never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "usuario"
}
