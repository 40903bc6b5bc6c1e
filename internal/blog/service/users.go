package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/pkg/idx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return domain.User{}, err
	}
	return u, nil
}

// SetAdmin grants or revokes admin on userID. The actor must be an admin.
func (s *UserService) SetAdmin(ctx context.Context, actorID, userID string, isAdmin bool) (domain.User, error) {
	actor, err := s.GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.User{}, ErrUnauthorized
		}
		return domain.User{}, err
	}
	if _, err := RequireAdmin(actor); err != nil {
		return domain.User{}, err
	}

	// User ids are ULIDs; anything else cannot exist
	if _, err := idx.Parse(userID); err != nil {
		return domain.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if err := s.Store.Users().SetAdmin(ctx, userID, isAdmin); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("admin flag changed",
		slog.String("target_user_id", userID),
		slog.Bool("admin", isAdmin),
	)
	return s.GetUserByID(ctx, userID)
}
