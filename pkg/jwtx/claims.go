package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes used when the service is not configured otherwise.
const (
	DefaultAccessTokenTTL  = 30 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
	DefaultResetTokenTTL   = 48 * time.Hour
)

// Token types carried in the "type" claim. Access tokens carry none.
const (
	TypeAccess  = ""
	TypeRefresh = "refresh"
	TypeReset   = "reset"
)

// Claims are the session token claims issued by the blog service.
type Claims struct {
	jwt.RegisteredClaims

	// Type separates refresh and reset tokens from access tokens so one can
	// never be replayed as the other.
	Type string `json:"type,omitempty"`
}

// NewClaims builds claims for subject valid for ttl from now, each with a
// fresh jti.
func NewClaims(subject, typ string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Type: typ,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// Expiry returns the exp claim, or the zero time if it is missing.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// ValidateType checks the "type" claim is exactly expected.
func (c *Claims) ValidateType(expected string) error {
	if c.Type != expected {
		return ErrWrongType
	}
	return nil
}
