package domain

import (
	"errors"
	"time"
)

// User is a registered account. Email doubles as the token subject, so it
// must stay unique; name is the alternate login identifier.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never return password in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers bad signature, malformed token and expiry alike.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound means the token verified but its subject no longer
	// resolves to an account.
	ErrUserNotFound = errors.New("user not found")

	ErrEmailTaken = errors.New("email already registered")
)
