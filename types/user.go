package types

import "time"

// User represents an account in the portal.
type User struct {
	// ID is the unique identifier of the user, generated by the store.
	ID int `json:"id" db:"id"`

	// Email is the user's email address. Unique across accounts.
	Email string `json:"email" db:"email"`

	// Name is the user's display name.
	Name string `json:"name" db:"name"`

	// PasswordHash stores the base64-encoded salted digest of the
	// user's password. Never exposed in responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// PasswordSalt is the random per-user salt mixed into the password
	// before hashing. Regenerated whenever the password changes.
	PasswordSalt []byte `json:"-" db:"password_salt"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent account update.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
