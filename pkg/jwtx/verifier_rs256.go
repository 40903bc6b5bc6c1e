package jwtx

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims are the OpenID Connect claims of an ID token.
type IdentityClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
}

// ValidateIssuer checks iss is one of allowed. An empty list allows any.
func (c *IdentityClaims) ValidateIssuer(allowed ...string) error {
	if len(allowed) == 0 {
		return nil
	}
	if !slices.Contains(allowed, c.Issuer) {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks expected is among the aud values. An empty
// expected audience is not enforced.
func (c *IdentityClaims) ValidateAudience(expected string) error {
	if expected == "" {
		return nil
	}
	if !slices.Contains(c.Audience, expected) {
		return ErrAudience
	}
	return nil
}

// IdentityVerifier validates RS256 ID tokens from an external identity
// provider against its published keys.
type IdentityVerifier struct {
	Keys     KeySource
	Issuers  []string
	Audience string
	Leeway   time.Duration
}

func NewIdentityVerifier(keys KeySource, audience string, issuers ...string) *IdentityVerifier {
	return &IdentityVerifier{
		Keys:     keys,
		Issuers:  issuers,
		Audience: audience,
		Leeway:   time.Minute,
	}
}

// Verify checks signature, issuer, audience and lifetime of an ID token.
func (v *IdentityVerifier) Verify(ctx context.Context, tokenStr string) (IdentityClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.Leeway),
	)

	var claims IdentityClaims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		// Need the kid to know which key to use
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.Join(ErrUnknownKID, errors.New("jwtx: missing kid"))
		}
		return v.Keys.Key(ctx, kid)
	})
	if err != nil {
		return IdentityClaims{}, mapParseError(err)
	}
	if !token.Valid {
		return IdentityClaims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.Issuers...); err != nil {
		return IdentityClaims{}, err
	}
	if err := claims.ValidateAudience(v.Audience); err != nil {
		return IdentityClaims{}, err
	}
	if claims.Subject == "" {
		return IdentityClaims{}, errors.Join(ErrInvalidClaim, errors.New("jwtx: missing sub"))
	}

	return claims, nil
}
