package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/oauth"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	identity domain.ExternalIdentity
	err      error
}

func (f *fakeProvider) AuthURL(redirectURI string) string {
	return "https://accounts.example.com/auth?redirect_uri=" + redirectURI
}

func (f *fakeProvider) Identify(context.Context, string, string) (domain.ExternalIdentity, error) {
	return f.identity, f.err
}

func TestOAuthBridge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newBridge := func(t *testing.T, p *fakeProvider) (*OAuthBridge, *testEnv) {
		env := newTestEnv(t)
		return &OAuthBridge{Provider: p, Store: env.store, Tokens: env.tokens}, env
	}

	t.Run("first sign-in provisions a non-admin user", func(t *testing.T) {
		b, env := newBridge(t, &fakeProvider{identity: domain.ExternalIdentity{
			Email:         "Carol@Example.com",
			EmailVerified: true,
			Picture:       "https://example.com/c.png",
		}})

		pair, user, err := b.LoginWithCode(ctx, "code", "")
		require.NoError(t, err)
		require.Equal(t, "carol@example.com", user.Email)
		require.Equal(t, "carol", user.Name)
		require.Equal(t, "https://example.com/c.png", user.ProfilePicture)
		require.False(t, user.IsAdmin)
		require.False(t, user.HasPassword())

		me, _, err := env.sessions.CurrentUser(ctx, pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, user.ID, me.ID)

		_, again, err := b.LoginWithCode(ctx, "code", "")
		require.NoError(t, err)
		require.Equal(t, user.ID, again.ID)
	})

	t.Run("existing account is linked by email", func(t *testing.T) {
		p := &fakeProvider{identity: domain.ExternalIdentity{
			Email:         "alice@example.com",
			EmailVerified: true,
			Name:          "Alice G",
			Picture:       "https://example.com/a.png",
		}}
		b, env := newBridge(t, p)
		alice := env.register(t, "alice@example.com", "secret123", false)

		_, user, err := b.LoginWithCode(ctx, "code", "")
		require.NoError(t, err)
		require.Equal(t, alice.ID, user.ID)
		require.Equal(t, "https://example.com/a.png", user.ProfilePicture)

		_, _, err = env.sessions.Login(ctx, "alice@example.com", "secret123")
		require.NoError(t, err)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name string
			p    *fakeProvider
			want error
		}{
			{"provider failure", &fakeProvider{err: fmt.Errorf("%w: invalid_grant", oauth.ErrProvider)}, ErrExternalService},
			{"bad identity", &fakeProvider{err: fmt.Errorf("%w: bad signature", oauth.ErrInvalidIdentity)}, ErrBadRequest},
			{"no email", &fakeProvider{identity: domain.ExternalIdentity{Subject: "x", EmailVerified: true}}, ErrBadRequest},
			{"unverified email", &fakeProvider{identity: domain.ExternalIdentity{Email: "a@example.com"}}, ErrBadRequest},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b, _ := newBridge(t, tt.p)
				_, _, err := b.LoginWithCode(ctx, "code", "")
				require.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("provider detail is kept", func(t *testing.T) {
		b, _ := newBridge(t, &fakeProvider{err: fmt.Errorf("%w: invalid_grant", oauth.ErrProvider)})
		_, _, err := b.LoginWithCode(ctx, "code", "")
		require.ErrorContains(t, err, "invalid_grant")
	})

	t.Run("not configured", func(t *testing.T) {
		b := &OAuthBridge{}
		_, err := b.AuthURL("")
		require.ErrorIs(t, err, ErrExternalService)
		_, _, err = b.LoginWithCode(ctx, "code", "")
		require.ErrorIs(t, err, ErrExternalService)
	})

	t.Run("auth url", func(t *testing.T) {
		b, _ := newBridge(t, &fakeProvider{})
		u, err := b.AuthURL("http://x/cb")
		require.NoError(t, err)
		require.Contains(t, u, "redirect_uri=http://x/cb")
	})
}
