package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/mail"
	"github.com/aussiebroadwan/blog/internal/blog/revocation"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/pkg/cryptox"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/idx"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// RegisterInput is a validated registration request.
type RegisterInput struct {
	Email    string
	Name     string
	Password string // empty for an OAuth-only account
	IsAdmin  bool
}

// SessionService runs the credential lifecycle: register, login, refresh,
// logout, bearer authentication and password reset.
type SessionService struct {
	Store   store.Store
	Tokens  *TokenIssuer
	Revoked revocation.List
	Mailer  mail.Sender

	// MailTimeout bounds background delivery of reset mail (default: 30s).
	MailTimeout time.Duration

	mailWG sync.WaitGroup
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The admin flag is only honoured for the very
// first account; later admins are granted through UserService.SetAdmin.
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	l := slogx.FromContext(ctx)
	email := normalizeEmail(in.Email)

	// 1. Hash password if one was given
	var hash string
	if in.Password != "" {
		h, err := cryptox.HashPassword(in.Password)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 2. Insert, deciding the admin flag in the same transaction
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if in.IsAdmin {
			empty, err := tx.Users().IsEmpty(ctx)
			if err != nil {
				return err
			}
			user.IsAdmin = empty
		}
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return domain.User{}, err
	}

	if in.IsAdmin && !user.IsAdmin {
		l.Warn("ignored admin flag on registration", slog.String("user_id", user.ID))
	}
	l.Info("user registered", slog.String("user_id", user.ID), slog.Bool("admin", user.IsAdmin))
	return user, nil
}

// Login checks email and password. Unknown email, OAuth-only account and
// wrong password are indistinguishable to the caller.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.TokenPair, domain.User, error) {
	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed", slog.String("email", email))
			return domain.TokenPair{}, domain.User{}, ErrUnauthorized
		}
		return domain.TokenPair{}, domain.User{}, err
	}

	if !user.HasPassword() || !cryptox.CheckPassword(password, user.PasswordHash) {
		l.Info("login failed", slog.String("email", email))
		return domain.TokenPair{}, domain.User{}, ErrUnauthorized
	}

	pair, err := s.Tokens.IssuePair(user.ID)
	if err != nil {
		return domain.TokenPair{}, domain.User{}, err
	}
	return pair, user, nil
}

// Refresh rotates a refresh token. The presented token is revoked before the
// new pair is issued, so replaying it fails.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	// 1. Verify signature, expiry and type
	claims, err := s.Tokens.Verify(refreshToken, jwtx.TypeRefresh)
	if err != nil {
		l.Info("refresh rejected", slog.Any("error", err))
		return domain.TokenPair{}, ErrUnauthorized
	}

	// 2. Subject must still exist
	if _, err := s.Store.Users().GetUserByID(ctx, claims.Subject); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrUnauthorized
		}
		return domain.TokenPair{}, err
	}

	// 3. Retire the old token. Only one caller can claim a jti, so replays
	// fail even when they race
	claimed, err := s.Revoked.RevokeIfAbsent(ctx, claims.ID, claims.Expiry())
	if err != nil {
		return domain.TokenPair{}, err
	}
	if !claimed {
		l.Warn("revoked refresh token presented", slog.String("user_id", claims.Subject))
		return domain.TokenPair{}, ErrUnauthorized
	}

	return s.Tokens.IssuePair(claims.Subject)
}

// Logout revokes whichever of the two tokens are present and valid. It never
// fails; problems are logged.
func (s *SessionService) Logout(ctx context.Context, refreshToken, accessToken string) {
	l := slogx.FromContext(ctx)

	revoke := func(token, typ string) {
		if token == "" {
			return
		}
		claims, err := s.Tokens.Verify(token, typ)
		if err != nil {
			return
		}
		if err := s.Revoked.Revoke(ctx, claims.ID, claims.Expiry()); err != nil {
			l.Warn("failed to revoke token on logout", slog.Any("error", err))
		}
	}

	revoke(refreshToken, jwtx.TypeRefresh)
	revoke(accessToken, jwtx.TypeAccess)
}

// CurrentUser resolves a bearer access token to its user.
func (s *SessionService) CurrentUser(ctx context.Context, accessToken string) (domain.User, jwtx.Claims, error) {
	claims, err := s.Tokens.Verify(accessToken, jwtx.TypeAccess)
	if err != nil {
		return domain.User{}, jwtx.Claims{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	revoked, err := s.Revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return domain.User{}, jwtx.Claims{}, err
	}
	if revoked {
		return domain.User{}, jwtx.Claims{}, fmt.Errorf("%w: token revoked", ErrUnauthorized)
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, jwtx.Claims{}, fmt.Errorf("%w: subject no longer exists", ErrUnauthorized)
		}
		return domain.User{}, jwtx.Claims{}, err
	}
	return user, claims, nil
}

// Authenticate implements httpx.Authenticator.
func (s *SessionService) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	user, claims, err := s.CurrentUser(ctx, token)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{
		UserID:      user.ID,
		Admin:       user.IsAdmin,
		TokenID:     claims.ID,
		TokenExpiry: claims.Expiry(),
	}, nil
}

// RequireAdmin fails with ErrForbidden unless user is an admin.
func RequireAdmin(user domain.User) (domain.User, error) {
	if !user.IsAdmin {
		return domain.User{}, ErrForbidden
	}
	return user, nil
}

// RequestPasswordReset returns a reset token whether or not the email is
// known, so the response has the same shape either way. Only a known user
// gets the token stored and mailed; for anyone else it is unusable.
func (s *SessionService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	token, claims, err := s.Tokens.IssueReset(email)
	if err != nil {
		return "", err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("password reset requested for unknown email")
			return token, nil
		}
		return "", err
	}

	if err := s.Store.Users().SetResetToken(ctx, user.ID, cryptox.FingerprintToken(token), claims.Expiry()); err != nil {
		return "", err
	}
	l.Info("password reset requested", slog.String("user_id", user.ID))

	s.sendResetMail(ctx, user, token)
	return token, nil
}

// sendResetMail delivers the reset link in the background so a known email
// answers as fast as an unknown one. Delivery outlives the request.
func (s *SessionService) sendResetMail(ctx context.Context, user domain.User, token string) {
	if s.Mailer == nil {
		return
	}

	timeout := s.MailTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)

	s.mailWG.Add(1)
	go func() {
		defer s.mailWG.Done()
		defer cancel()

		err := s.Mailer.SendPasswordReset(ctx, mail.PasswordReset{
			To:    user.Email,
			Name:  user.Name,
			Token: token,
			TTL:   s.Tokens.ResetTTL,
		})
		if err != nil {
			slogx.FromContext(ctx).Error("failed to deliver password reset",
				slog.String("user_id", user.ID), slog.Any("error", err))
		}
	}()
}

// WaitForMail blocks until every queued reset mail has been attempted.
func (s *SessionService) WaitForMail() {
	s.mailWG.Wait()
}

// ResetPassword consumes a reset token. The token must verify and match the
// one stored on the user; it is cleared so it works once.
func (s *SessionService) ResetPassword(ctx context.Context, token, newPassword string) error {
	l := slogx.FromContext(ctx)

	// 1. Verify token
	claims, err := s.Tokens.Verify(token, jwtx.TypeReset)
	if err != nil {
		return fmt.Errorf("%w: invalid token", ErrBadRequest)
	}

	// 2. Find the user it was issued for
	user, err := s.Store.Users().GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return err
	}

	// 3. Must be the outstanding reset for this user
	fingerprint := cryptox.FingerprintToken(token)
	if !user.ResetTokenMatches(fingerprint, time.Now()) {
		l.Warn("stale or unknown reset token presented", slog.String("user_id", user.ID))
		return fmt.Errorf("%w: invalid token", ErrBadRequest)
	}

	// 4. Consume the token and store the new hash together. The conditional
	// clear lets only one of two racing resets through.
	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().ConsumeResetToken(ctx, user.ID, fingerprint, time.Now()); err != nil {
			return err
		}
		return tx.Users().UpdatePasswordHash(ctx, user.ID, hash)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("reset token already used", slog.String("user_id", user.ID))
			return fmt.Errorf("%w: invalid token", ErrBadRequest)
		}
		return err
	}

	l.Info("password reset completed", slog.String("user_id", user.ID))
	return nil
}
