package domain

import (
	"crypto/subtle"
	"time"
)

type User struct {
	ID             string
	Email          string
	Name           string
	PasswordHash   string // argon2 encoded, empty for OAuth-only accounts
	ProfilePicture string
	IsAdmin        bool

	// Outstanding password reset, cleared once consumed. Only the token's
	// fingerprint is stored.
	ResetToken        string
	ResetTokenExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether the account can use password login.
func (u User) HasPassword() bool { return u.PasswordHash != "" }

// ResetTokenMatches reports whether fingerprint belongs to the user's
// current, unexpired reset token.
func (u User) ResetTokenMatches(fingerprint string, now time.Time) bool {
	if u.ResetToken == "" || subtle.ConstantTimeCompare([]byte(u.ResetToken), []byte(fingerprint)) != 1 {
		return false
	}
	return u.ResetTokenExpires != nil && now.Before(*u.ResetTokenExpires)
}
