package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewClaims(t *testing.T) {
	now := time.Now().UTC()
	a := jwtx.NewClaims("user-1", jwtx.TypeRefresh, time.Hour, now)
	b := jwtx.NewClaims("user-1", jwtx.TypeRefresh, time.Hour, now)

	require.Equal(t, "user-1", a.Subject)
	require.Equal(t, jwtx.TypeRefresh, a.Type)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.WithinDuration(t, now.Add(time.Hour), a.Expiry(), time.Second)
}

func TestValidateType(t *testing.T) {
	access := jwtx.NewClaims("u", jwtx.TypeAccess, time.Minute, time.Now())
	refresh := jwtx.NewClaims("u", jwtx.TypeRefresh, time.Minute, time.Now())

	require.NoError(t, access.ValidateType(jwtx.TypeAccess))
	require.ErrorIs(t, access.ValidateType(jwtx.TypeRefresh), jwtx.ErrWrongType)
	require.ErrorIs(t, refresh.ValidateType(jwtx.TypeAccess), jwtx.ErrWrongType)
}

func TestIdentityClaimsIssuer(t *testing.T) {
	c := &jwtx.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "https://accounts.google.com"},
	}

	require.NoError(t, c.ValidateIssuer("accounts.google.com", "https://accounts.google.com"))
	require.NoError(t, c.ValidateIssuer())
	require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
}

func TestIdentityClaimsAudience(t *testing.T) {
	c := &jwtx.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"web", "mobile"}},
	}

	require.NoError(t, c.ValidateAudience("web"))
	require.NoError(t, c.ValidateAudience(""))
	require.ErrorIs(t, c.ValidateAudience("admin"), jwtx.ErrAudience)
}
