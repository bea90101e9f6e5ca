package models

import "time"

// User represents an account used for authentication and as the owner of
// fasting sessions.
// PasswordHash must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier assigned on registration.
	UserID int64 `json:"id"`

	// Username is the unique, non-empty display login.
	Username string `json:"username"`

	// Email is the unique, non-empty address used to log in.
	Email string `json:"email"`

	// Password carries the plaintext password of an inbound register or
	// login request. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored for the account.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
