package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

const userColumns = `id, email, name, password_hash, profile_picture, is_admin,
	reset_token, reset_token_expires, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u            domain.User
		passwordHash sql.NullString
		picture      sql.NullString
		resetToken   sql.NullString
		resetExpires sql.NullTime
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &passwordHash, &picture, &u.IsAdmin,
		&resetToken, &resetExpires, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return domain.User{}, err
	}

	u.PasswordHash = passwordHash.String
	u.ProfilePicture = picture.String
	u.ResetToken = resetToken.String
	u.ResetTokenExpires = timePtr(resetExpires)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, profile_picture, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Name, nullString(u.PasswordHash), nullString(u.ProfilePicture), u.IsAdmin,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfilePicture(ctx context.Context, userID, picture string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET profile_picture = $1, updated_at = now() WHERE id = $2`,
		nullString(picture), userID,
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
		newHash, userID,
	))
}

func (r *usersRepo) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET is_admin = $1, updated_at = now() WHERE id = $2`,
		isAdmin, userID,
	))
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = $1, reset_token_expires = $2, updated_at = now() WHERE id = $3`,
		token, expires.UTC(), userID,
	))
}

func (r *usersRepo) ConsumeResetToken(ctx context.Context, userID, token string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires = NULL, updated_at = now()
		 WHERE id = $1 AND reset_token = $2 AND reset_token_expires >= $3`,
		userID, token, at.UTC(),
	))
}

func (r *usersRepo) ClearExpiredResetTokens(ctx context.Context, at time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires = NULL
		 WHERE reset_token_expires IS NOT NULL AND reset_token_expires < $1`,
		at.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return !exists, nil
}
