package oauth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testClientID = "client-123.apps.googleusercontent.com"

type fakeGoogle struct {
	signer *jwtx.RS256Signer
	srv    *httptest.Server

	// tokenResponse is served by the token endpoint
	tokenStatus   int
	tokenResponse any
	lastForm      url.Values
}

func newFakeGoogle(t *testing.T) *fakeGoogle {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	signer, err := jwtx.NewSignerRS256("kid-1", pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}))
	require.NoError(t, err)

	f := &fakeGoogle{signer: signer, tokenStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		f.lastForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.tokenStatus)
		_ = json.NewEncoder(w).Encode(f.tokenResponse)
	})
	mux.HandleFunc("GET /certs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeGoogle) client() *Google {
	return NewGoogle(GoogleConfig{
		ClientID:     testClientID,
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:8000/api/auth/google/callback",
		TokenURL:     f.srv.URL + "/token",
		CertsURL:     f.srv.URL + "/certs",
	})
}

func (f *fakeGoogle) idToken(t *testing.T, mutate func(*jwtx.IdentityClaims)) string {
	t.Helper()

	now := time.Now()
	claims := jwtx.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://accounts.google.com",
			Subject:   "google-1",
			Audience:  jwt.ClaimStrings{testClientID},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email:         "alice@example.com",
		EmailVerified: true,
		Name:          "Alice",
		Picture:       "https://example.com/alice.png",
	}
	if mutate != nil {
		mutate(&claims)
	}
	tok, err := f.signer.Sign(claims)
	require.NoError(t, err)
	return tok
}

func TestBuildAuthURL(t *testing.T) {
	t.Parallel()

	g := NewGoogle(GoogleConfig{ClientID: testClientID, RedirectURI: "http://localhost/cb"})

	u, err := url.Parse(g.AuthURL(""))
	require.NoError(t, err)
	require.Equal(t, "accounts.google.com", u.Host)
	require.Equal(t, "/o/oauth2/auth", u.Path)

	q := u.Query()
	require.Equal(t, testClientID, q.Get("client_id"))
	require.Equal(t, "http://localhost/cb", q.Get("redirect_uri"))
	require.Equal(t, "code", q.Get("response_type"))
	require.Equal(t, "openid email profile", q.Get("scope"))
	require.Equal(t, "offline", q.Get("access_type"))
	require.Equal(t, "consent", q.Get("prompt"))

	u, err = url.Parse(g.AuthURL("http://other/cb"))
	require.NoError(t, err)
	require.Equal(t, "http://other/cb", u.Query().Get("redirect_uri"))

	require.Equal(t, "https://x/auth?a=1&client_id=c&redirect_uri=r&response_type=code&scope=s",
		BuildAuthURL("https://x/auth?a=1", "c", "r", "s", nil))
}

func TestIdentify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("verified identity", func(t *testing.T) {
		f := newFakeGoogle(t)
		f.tokenResponse = TokenSet{AccessToken: "at", IDToken: f.idToken(t, nil), TokenType: "Bearer"}

		id, err := f.client().Identify(ctx, "code-1", "")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", id.Email)
		require.Equal(t, "Alice", id.Name)
		require.Equal(t, "https://example.com/alice.png", id.Picture)
		require.Equal(t, "google-1", id.Subject)

		require.Equal(t, "code-1", f.lastForm.Get("code"))
		require.Equal(t, "authorization_code", f.lastForm.Get("grant_type"))
		require.Equal(t, "http://localhost:8000/api/auth/google/callback", f.lastForm.Get("redirect_uri"))
	})

	t.Run("provider rejects code", func(t *testing.T) {
		f := newFakeGoogle(t)
		f.tokenStatus = http.StatusBadRequest
		f.tokenResponse = providerError{Error: "invalid_grant", ErrorDescription: "Bad Request"}

		_, err := f.client().Identify(ctx, "bad", "")
		require.ErrorIs(t, err, ErrProvider)
		require.ErrorContains(t, err, "invalid_grant")
	})

	t.Run("missing id token", func(t *testing.T) {
		f := newFakeGoogle(t)
		f.tokenResponse = TokenSet{AccessToken: "at"}

		_, err := f.client().Identify(ctx, "code", "")
		require.ErrorIs(t, err, ErrInvalidIdentity)
	})

	t.Run("wrong audience", func(t *testing.T) {
		f := newFakeGoogle(t)
		f.tokenResponse = TokenSet{IDToken: f.idToken(t, func(c *jwtx.IdentityClaims) {
			c.Audience = jwt.ClaimStrings{"someone-else"}
		})}

		_, err := f.client().Identify(ctx, "code", "")
		require.ErrorIs(t, err, ErrInvalidIdentity)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		f := newFakeGoogle(t)
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"iss": "accounts.google.com", "aud": testClientID, "sub": "x", "email": "evil@example.com",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		f.tokenResponse = TokenSet{IDToken: unsigned}

		_, err = f.client().Identify(ctx, "code", "")
		require.ErrorIs(t, err, ErrInvalidIdentity)
	})

	t.Run("unreachable token endpoint", func(t *testing.T) {
		f := newFakeGoogle(t)
		g := f.client()
		f.srv.Close()

		_, err := g.Identify(ctx, "code", "")
		require.ErrorIs(t, err, ErrProvider)
	})
}

func TestVerifyIDTokenKeyFetchFailure(t *testing.T) {
	t.Parallel()

	f := newFakeGoogle(t)
	tok := f.idToken(t, nil)

	g := NewGoogle(GoogleConfig{ClientID: testClientID, CertsURL: f.srv.URL + "/missing"})
	_, err := g.VerifyIDToken(context.Background(), tok)
	require.ErrorIs(t, err, ErrProvider)
}
