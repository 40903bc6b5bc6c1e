// Package revocation keeps the ids of tokens that must no longer be
// accepted, for as long as the token itself would have been valid.
package revocation

import (
	"context"
	"time"
)

// List is a denylist of token ids (jti).
type List interface {
	// Revoke marks jti revoked until exp. Tokens already past exp are
	// ignored since verification rejects them anyway.
	Revoke(ctx context.Context, jti string, exp time.Time) error

	// RevokeIfAbsent atomically revokes jti unless it is already revoked.
	// It reports true only to the caller that performed the revocation, so
	// exactly one of several concurrent callers wins. A token already past
	// exp is never claimed.
	RevokeIfAbsent(ctx context.Context, jti string, exp time.Time) (bool, error)

	IsRevoked(ctx context.Context, jti string) (bool, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
