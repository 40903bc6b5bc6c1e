package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidReference is returned when a foreign key points nowhere,
	// e.g. a post naming a category that does not exist.
	ErrInvalidReference = errors.New("store: invalid reference")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are reached through methods so that code
// running inside WithTx only ever sees the transaction-scoped repos.
type Store interface {
	Users() Users
	Posts() Posts
	Categories() Categories

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. It commits when fn returns nil
	// and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used by login, OAuth linking and password reset.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID). A
	// duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfilePicture sets profile_picture and bumps updated_at.
	UpdateProfilePicture(ctx context.Context, userID, picture string) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// SetAdmin flips the admin flag.
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error

	// SetResetToken stores an outstanding password reset on the user.
	SetResetToken(ctx context.Context, userID, token string, expires time.Time) error

	// ConsumeResetToken nulls both reset fields, but only while token is
	// still the user's outstanding, unexpired reset. ErrNotFound otherwise.
	ConsumeResetToken(ctx context.Context, userID, token string, now time.Time) error

	// ClearExpiredResetTokens nulls reset fields whose expiry is before now
	// and returns how many users were touched.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Posts interface {
	// ListPosts returns at most limit posts after skipping offset, ordered by id.
	ListPosts(ctx context.Context, offset, limit int) ([]domain.Post, error)

	GetPostByID(ctx context.Context, id int64) (domain.Post, error)

	// CreatePost inserts p and returns it with id and category populated.
	CreatePost(ctx context.Context, p domain.Post) (domain.Post, error)

	// UpdatePost overwrites every mutable column of p.
	UpdatePost(ctx context.Context, p domain.Post) (domain.Post, error)

	DeletePost(ctx context.Context, id int64) error
}

type Categories interface {
	// ListCategories returns at most limit categories after skipping offset, ordered by id.
	ListCategories(ctx context.Context, offset, limit int) ([]domain.Category, error)

	GetCategoryByID(ctx context.Context, id int64) (domain.Category, error)
	GetCategoryByName(ctx context.Context, name string) (domain.Category, error)

	// CreateCategory inserts c. A duplicate name yields ErrAlreadyExists.
	CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error)

	// UpdateCategory replaces name and description. A name taken by another
	// category yields ErrAlreadyExists.
	UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error)

	// DeleteCategory removes the category, posts referencing it are detached.
	DeleteCategory(ctx context.Context, id int64) error

	IsEmpty(ctx context.Context) (bool, error)
}
