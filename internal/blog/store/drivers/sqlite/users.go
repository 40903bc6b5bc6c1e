package sqlite

import (
	"context"
	"database/sql"
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
		resetExpires sql.NullInt64
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&passwordHash,
		&picture,
		&u.IsAdmin,
		&resetToken,
		&resetExpires,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.PasswordHash = mapNullString(passwordHash)
	u.ProfilePicture = mapNullString(picture)
	u.ResetToken = mapNullString(resetToken)
	u.ResetTokenExpires = mapNullUnixPtr(resetExpires)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, profile_picture, is_admin, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.Name,
		mapStringNull(u.PasswordHash),
		mapStringNull(u.ProfilePicture),
		u.IsAdmin,
		ts,
		ts,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfilePicture(ctx context.Context, userID, picture string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET profile_picture = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(picture), now(), userID,
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, now(), userID,
	))
}

func (r *usersRepo) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET is_admin = ?, updated_at = ? WHERE id = ?`,
		isAdmin, now(), userID,
	))
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = ?, reset_token_expires = ?, updated_at = ? WHERE id = ?`,
		token, expires.Unix(), now(), userID,
	))
}

func (r *usersRepo) ConsumeResetToken(ctx context.Context, userID, token string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires = NULL, updated_at = ?
		 WHERE id = ? AND reset_token = ? AND reset_token_expires >= ?`,
		now(), userID, token, at.Unix(),
	))
}

func (r *usersRepo) ClearExpiredResetTokens(ctx context.Context, at time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires = NULL
		 WHERE reset_token_expires IS NOT NULL AND reset_token_expires < ?`,
		at.Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
