package service

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
)

// TokenIssuer mints and checks the HS256 session tokens.
type TokenIssuer struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier

	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration

	// Now is replaceable in tests
	Now func() time.Time
}

func NewTokenIssuer(secret []byte, accessTTL, refreshTTL, resetTTL time.Duration) (*TokenIssuer, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	if accessTTL <= 0 {
		accessTTL = jwtx.DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = jwtx.DefaultRefreshTokenTTL
	}
	if resetTTL <= 0 {
		resetTTL = jwtx.DefaultResetTokenTTL
	}
	return &TokenIssuer{
		Signer:     signer,
		Verifier:   jwtx.NewVerifierHS256(secret),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
		ResetTTL:   resetTTL,
		Now:        time.Now,
	}, nil
}

func (t *TokenIssuer) issue(subject, typ string, ttl time.Duration) (string, jwtx.Claims, error) {
	claims := jwtx.NewClaims(subject, typ, ttl, t.Now())
	token, err := t.Signer.Sign(claims)
	if err != nil {
		return "", jwtx.Claims{}, err
	}
	return token, claims, nil
}

// IssueAccess mints {sub: userID, exp} with no type claim.
func (t *TokenIssuer) IssueAccess(userID string) (string, jwtx.Claims, error) {
	return t.issue(userID, jwtx.TypeAccess, t.AccessTTL)
}

// IssueRefresh mints {sub: userID, type: "refresh", exp}.
func (t *TokenIssuer) IssueRefresh(userID string) (string, jwtx.Claims, error) {
	return t.issue(userID, jwtx.TypeRefresh, t.RefreshTTL)
}

// IssueReset mints {sub: email, type: "reset", exp}. It cannot authenticate.
func (t *TokenIssuer) IssueReset(email string) (string, jwtx.Claims, error) {
	return t.issue(email, jwtx.TypeReset, t.ResetTTL)
}

// IssuePair mints the access and refresh tokens of a new session.
func (t *TokenIssuer) IssuePair(userID string) (domain.TokenPair, error) {
	access, _, err := t.IssueAccess(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, _, err := t.IssueRefresh(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    t.AccessTTL,
		RefreshTTL:   t.RefreshTTL,
	}, nil
}

// Verify checks signature, expiry and type. Failures keep their jwtx cause
// for logging; callers decide what the end user sees.
func (t *TokenIssuer) Verify(token, typ string) (jwtx.Claims, error) {
	if token == "" {
		return jwtx.Claims{}, errors.Join(jwtx.ErrMalformed, errors.New("empty token"))
	}
	return t.Verifier.Verify(token, typ)
}
