// Package auth authenticates till operators and issues API tokens.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a till operator account. PasswordHash is a bcrypt hash and
// never leaves the package.
type User struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}
