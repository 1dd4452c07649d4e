package auth

import "time"

// User represents an authenticated account. Club membership and roles live
// in the profiles package; this record only establishes identity.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
