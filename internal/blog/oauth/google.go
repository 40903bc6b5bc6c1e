// Package oauth talks to Google's OAuth 2.0 endpoints: it builds the consent
// URL, exchanges authorization codes and verifies the returned ID token.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
)

const (
	GoogleAuthEndpoint  = "https://accounts.google.com/o/oauth2/auth"
	GoogleTokenEndpoint = "https://oauth2.googleapis.com/token"
	GoogleCertsURL      = "https://www.googleapis.com/oauth2/v3/certs"

	DefaultScope = "openid email profile"
)

// GoogleIssuers are the iss values Google puts in ID tokens.
var GoogleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

var (
	// ErrProvider means Google could not be reached or refused the
	// exchange. The wrapped error carries the provider's detail.
	ErrProvider = errors.New("oauth provider error")

	// ErrInvalidIdentity means the exchange succeeded but the identity it
	// returned is missing or unusable.
	ErrInvalidIdentity = errors.New("invalid identity")
)

// GoogleConfig configures the Google client. Endpoints default to Google's.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	AuthURL  string
	TokenURL string
	CertsURL string

	HTTPClient *http.Client
}

// Google is an OAuth client for Google sign-in.
type Google struct {
	cfg      GoogleConfig
	client   *http.Client
	verifier *jwtx.IdentityVerifier
}

func NewGoogle(cfg GoogleConfig) *Google {
	if cfg.AuthURL == "" {
		cfg.AuthURL = GoogleAuthEndpoint
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = GoogleTokenEndpoint
	}
	if cfg.CertsURL == "" {
		cfg.CertsURL = GoogleCertsURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	keys := jwtx.NewRemoteKeySet(cfg.CertsURL, client)
	return &Google{
		cfg:      cfg,
		client:   client,
		verifier: jwtx.NewIdentityVerifier(keys, cfg.ClientID, GoogleIssuers...),
	}
}

// BuildAuthURL builds an authorization code consent URL. It makes no network
// call.
func BuildAuthURL(endpoint, clientID, redirectURI, scope string, extra url.Values) string {
	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	q.Set("client_id", clientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", scope)

	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + q.Encode()
}

// AuthURL returns the consent URL. An empty redirectURI uses the configured
// default.
func (g *Google) AuthURL(redirectURI string) string {
	return BuildAuthURL(g.cfg.AuthURL, g.cfg.ClientID, g.redirect(redirectURI), DefaultScope, url.Values{
		"access_type": {"offline"},
		"prompt":      {"consent"},
	})
}

func (g *Google) redirect(redirectURI string) string {
	if redirectURI == "" {
		return g.cfg.RedirectURI
	}
	return redirectURI
}

// TokenSet is Google's token endpoint response.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope,omitempty"`
}

type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Exchange trades an authorization code for Google's token set.
func (g *Google) Exchange(ctx context.Context, code, redirectURI string) (TokenSet, error) {
	form := url.Values{
		"code":          {code},
		"client_id":     {g.cfg.ClientID},
		"client_secret": {g.cfg.ClientSecret},
		"redirect_uri":  {g.redirect(redirectURI)},
		"grant_type":    {"authorization_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return TokenSet{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return TokenSet{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return TokenSet{}, fmt.Errorf("%w: read response: %v", ErrProvider, err)
	}

	if resp.StatusCode != http.StatusOK {
		var pe providerError
		if json.Unmarshal(body, &pe) == nil && pe.Error != "" {
			if pe.ErrorDescription != "" {
				return TokenSet{}, fmt.Errorf("%w: %s: %s", ErrProvider, pe.Error, pe.ErrorDescription)
			}
			return TokenSet{}, fmt.Errorf("%w: %s", ErrProvider, pe.Error)
		}
		return TokenSet{}, fmt.Errorf("%w: token endpoint returned %d", ErrProvider, resp.StatusCode)
	}

	var ts TokenSet
	if err := json.Unmarshal(body, &ts); err != nil {
		return TokenSet{}, fmt.Errorf("%w: decode token response: %v", ErrProvider, err)
	}
	return ts, nil
}

// VerifyIDToken checks an ID token against Google's published keys and
// returns the identity it asserts.
func (g *Google) VerifyIDToken(ctx context.Context, idToken string) (domain.ExternalIdentity, error) {
	claims, err := g.verifier.Verify(ctx, idToken)
	if err != nil {
		if errors.Is(err, jwtx.ErrKeyFetch) {
			return domain.ExternalIdentity{}, fmt.Errorf("%w: %v", ErrProvider, err)
		}
		return domain.ExternalIdentity{}, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}

	return domain.ExternalIdentity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		Picture:       claims.Picture,
	}, nil
}

// Identify runs the whole code flow: exchange, then ID token verification.
func (g *Google) Identify(ctx context.Context, code, redirectURI string) (domain.ExternalIdentity, error) {
	ts, err := g.Exchange(ctx, code, redirectURI)
	if err != nil {
		return domain.ExternalIdentity{}, err
	}
	if ts.IDToken == "" {
		return domain.ExternalIdentity{}, fmt.Errorf("%w: no id_token in provider response", ErrInvalidIdentity)
	}
	return g.VerifyIDToken(ctx, ts.IDToken)
}
