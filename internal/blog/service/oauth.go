package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/oauth"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/pkg/idx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// IdentityProvider is the external sign-in provider, Google in production.
type IdentityProvider interface {
	AuthURL(redirectURI string) string
	Identify(ctx context.Context, code, redirectURI string) (domain.ExternalIdentity, error)
}

// OAuthBridge turns a provider authorization code into a local session,
// provisioning the user on first sign-in.
type OAuthBridge struct {
	Provider IdentityProvider
	Store    store.Store
	Tokens   *TokenIssuer
}

// AuthURL returns the provider consent URL.
func (b *OAuthBridge) AuthURL(redirectURI string) (string, error) {
	if b.Provider == nil {
		return "", fmt.Errorf("%w: google sign-in is not configured", ErrExternalService)
	}
	return b.Provider.AuthURL(redirectURI), nil
}

// LoginWithCode exchanges code for a verified identity and signs the
// matching local user in.
func (b *OAuthBridge) LoginWithCode(ctx context.Context, code, redirectURI string) (domain.TokenPair, domain.User, error) {
	l := slogx.FromContext(ctx)

	if b.Provider == nil {
		return domain.TokenPair{}, domain.User{}, fmt.Errorf("%w: google sign-in is not configured", ErrExternalService)
	}

	// 1. Exchange the code and verify the ID token
	id, err := b.Provider.Identify(ctx, code, redirectURI)
	if err != nil {
		l.Warn("oauth sign-in failed", slog.Any("error", err))
		switch {
		case errors.Is(err, oauth.ErrProvider):
			return domain.TokenPair{}, domain.User{}, fmt.Errorf("%w: %v", ErrExternalService, err)
		case errors.Is(err, oauth.ErrInvalidIdentity):
			return domain.TokenPair{}, domain.User{}, fmt.Errorf("%w: could not validate Google credentials", ErrBadRequest)
		default:
			return domain.TokenPair{}, domain.User{}, err
		}
	}

	// 2. The email is the link to a local account
	email := normalizeEmail(id.Email)
	if email == "" {
		return domain.TokenPair{}, domain.User{}, fmt.Errorf("%w: email not found in Google token", ErrBadRequest)
	}
	if !id.EmailVerified {
		return domain.TokenPair{}, domain.User{}, fmt.Errorf("%w: Google email is not verified", ErrBadRequest)
	}

	// 3. Find or provision
	user, err := b.findOrCreate(ctx, email, id)
	if err != nil {
		return domain.TokenPair{}, domain.User{}, err
	}

	// 4. Same session as a password login
	pair, err := b.Tokens.IssuePair(user.ID)
	if err != nil {
		return domain.TokenPair{}, domain.User{}, err
	}
	return pair, user, nil
}

func (b *OAuthBridge) findOrCreate(ctx context.Context, email string, id domain.ExternalIdentity) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := b.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		if user.ProfilePicture == "" && id.Picture != "" {
			if err := b.Store.Users().UpdateProfilePicture(ctx, user.ID, id.Picture); err != nil {
				return domain.User{}, err
			}
			user.ProfilePicture = id.Picture
		}
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	name := strings.TrimSpace(id.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	now := time.Now().UTC()
	user = domain.User{
		ID:             idx.New().String(),
		Email:          email,
		Name:           name,
		ProfilePicture: id.Picture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := b.Store.Users().CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent first sign-in
		if errors.Is(err, store.ErrAlreadyExists) {
			return b.Store.Users().GetUserByEmail(ctx, email)
		}
		return domain.User{}, err
	}

	l.Info("user provisioned from google", slog.String("user_id", user.ID))
	return user, nil
}
