package jwtx_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	exampleIssuer   = "https://accounts.example.com"
	exampleAudience = "client-123"
)

func newRSASigner(t *testing.T, kid string) *jwtx.RS256Signer {
	t.Helper()

	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privKey),
	})

	signer, err := jwtx.NewSignerRS256(kid, privPEM)
	require.NoError(t, err)
	return signer
}

func identityToken(t *testing.T, s *jwtx.RS256Signer, iss, aud string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	token, err := s.Sign(jwtx.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    iss,
			Subject:   "google-sub-1",
			Audience:  jwt.ClaimStrings{aud},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:         "alice@example.com",
		EmailVerified: true,
		Name:          "Alice",
		Picture:       "https://example.com/a.png",
	})
	require.NoError(t, err)
	return token
}

func TestIdentityVerifier(t *testing.T) {
	ctx := context.Background()
	signer := newRSASigner(t, "k1")

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(signer.PublicJWK()))

	verifier := jwtx.NewIdentityVerifier(keys, exampleAudience, exampleIssuer, "accounts.example.com")

	t.Run("valid token", func(t *testing.T) {
		claims, err := verifier.Verify(ctx, identityToken(t, signer, exampleIssuer, exampleAudience, time.Minute))
		require.NoError(t, err)
		require.Equal(t, "google-sub-1", claims.Subject)
		require.Equal(t, "alice@example.com", claims.Email)
		require.True(t, claims.EmailVerified)
		require.Equal(t, "Alice", claims.Name)
	})

	t.Run("alternate issuer spelling", func(t *testing.T) {
		_, err := verifier.Verify(ctx, identityToken(t, signer, "accounts.example.com", exampleAudience, time.Minute))
		require.NoError(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := verifier.Verify(ctx, identityToken(t, signer, "https://evil.example.com", exampleAudience, time.Minute))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		_, err := verifier.Verify(ctx, identityToken(t, signer, exampleIssuer, "someone-else", time.Minute))
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := verifier.Verify(ctx, identityToken(t, signer, exampleIssuer, exampleAudience, -time.Hour))
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown key", func(t *testing.T) {
		other := newRSASigner(t, "k2")
		_, err := verifier.Verify(ctx, identityToken(t, other, exampleIssuer, exampleAudience, time.Minute))
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("forged signature under known kid", func(t *testing.T) {
		forger := newRSASigner(t, "k1")
		_, err := verifier.Verify(ctx, identityToken(t, forger, exampleIssuer, exampleAudience, time.Minute))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}

func TestRemoteKeySet(t *testing.T) {
	ctx := context.Background()
	signer := newRSASigner(t, "k1")

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
	}))
	defer srv.Close()

	remote := jwtx.NewRemoteKeySet(srv.URL, srv.Client())
	verifier := jwtx.NewIdentityVerifier(remote, exampleAudience, exampleIssuer)

	t.Run("fetches once and caches", func(t *testing.T) {
		for range 3 {
			_, err := verifier.Verify(ctx, identityToken(t, signer, exampleIssuer, exampleAudience, time.Minute))
			require.NoError(t, err)
		}
		require.EqualValues(t, 1, hits.Load())
	})

	t.Run("unknown kid right after a fetch is not refetched", func(t *testing.T) {
		before := hits.Load()
		other := newRSASigner(t, "attacker")
		for range 5 {
			_, err := verifier.Verify(ctx, identityToken(t, other, exampleIssuer, exampleAudience, time.Minute))
			require.ErrorIs(t, err, jwtx.ErrUnknownKID)
		}
		require.Equal(t, before, hits.Load())
	})

	t.Run("unknown kid refetches once the interval passed", func(t *testing.T) {
		remote.MinRefresh = 0
		before := hits.Load()
		other := newRSASigner(t, "rotated")
		_, err := verifier.Verify(ctx, identityToken(t, other, exampleIssuer, exampleAudience, time.Minute))
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
		require.Equal(t, before+1, hits.Load())
	})

	t.Run("fetch failure", func(t *testing.T) {
		down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer down.Close()

		_, err := jwtx.NewRemoteKeySet(down.URL, down.Client()).Key(ctx, "k1")
		require.ErrorIs(t, err, jwtx.ErrKeyFetch)
	})
}
