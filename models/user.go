package models

import "time"

// DefaultRole is assigned to every account created through registration.
// There is no role management beyond this flat string.
const DefaultRole = "user"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries:
// the JSON form of a User is exactly the public view returned by the
// login endpoint (id, email, name, role).
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialized and never logged.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Role is a flat role string, defaulted to [DefaultRole] at registration.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	// Internal; not part of the public view.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
