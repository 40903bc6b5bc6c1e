package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewStoreFromDB(db), mock
}

var userCols = []string{
	"id", "email", "name", "password_hash", "profile_picture", "is_admin",
	"reset_token", "reset_token_expires", "created_at", "updated_at",
}

var postCols = []string{
	"id", "title", "content", "image_url", "category_id", "author_id",
	"created_at", "updated_at", "id", "name", "description",
}

func TestUsersRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("get by email", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		now := time.Now()
		mock.ExpectQuery(`(?s)^SELECT\s+id,\s*email.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`).
			WithArgs("a@example.com").
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow("u1", "a@example.com", "Alice", "hash", nil, true, nil, nil, now, now))

		u, err := s.Users().GetUserByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		require.Equal(t, "u1", u.ID)
		require.True(t, u.IsAdmin)
		require.Empty(t, u.ProfilePicture)
		require.Nil(t, u.ResetTokenExpires)
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := s.Users().GetUserByID(ctx, "ghost")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email maps to already exists", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		mock.ExpectExec(`^INSERT\s+INTO\s+users`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

		err := s.Users().CreateUser(ctx, domain.User{ID: "u1", Email: "a@example.com", Name: "A"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("set admin on missing user", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		mock.ExpectExec(`^UPDATE\s+users\s+SET\s+is_admin\s*=\s*\$1`).
			WithArgs(true, "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, s.Users().SetAdmin(ctx, "ghost", true), store.ErrNotFound)
	})

	t.Run("consuming a reset token that is no longer outstanding", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		at := time.Now()
		mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET\s+reset_token\s*=\s*NULL.*WHERE\s+id\s*=\s*\$1\s+AND\s+reset_token\s*=\s*\$2`).
			WithArgs("u1", "fp", at.UTC()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, s.Users().ConsumeResetToken(ctx, "u1", "fp", at), store.ErrNotFound)
	})

	t.Run("is empty", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		mock.ExpectQuery(`^SELECT\s+EXISTS\s+\(SELECT\s+1\s+FROM\s+users\)$`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		empty, err := s.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})
}

func TestPostsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create returns joined row", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		now := time.Now()
		catID := int64(3)

		mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+posts.*RETURNING\s+id$`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery(`(?s)LEFT\s+JOIN\s+categories.*WHERE\s+p\.id\s*=\s*\$1$`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(postCols).
				AddRow(int64(7), "t", "c", nil, catID, nil, now, now, catID, "Technology", nil))

		p, err := s.Posts().CreatePost(ctx, domain.Post{Title: "t", Content: "c", CategoryID: &catID})
		require.NoError(t, err)
		require.EqualValues(t, 7, p.ID)
		require.NotNil(t, p.Category)
		require.Equal(t, "Technology", p.Category.Name)
	})

	t.Run("unknown category maps to invalid reference", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		mock.ExpectQuery(`^INSERT\s+INTO\s+posts`).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		_, err := s.Posts().CreatePost(ctx, domain.Post{Title: "t", Content: "c"})
		require.ErrorIs(t, err, store.ErrInvalidReference)
	})

	t.Run("list paginates", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		now := time.Now()
		mock.ExpectQuery(`ORDER\s+BY\s+p\.id\s+LIMIT\s+\$1\s+OFFSET\s+\$2$`).
			WithArgs(int64(2), int64(4)).
			WillReturnRows(sqlmock.NewRows(postCols).
				AddRow(int64(5), "a", "b", nil, nil, nil, now, now, nil, nil, nil))

		posts, err := s.Posts().ListPosts(ctx, 4, 2)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.Nil(t, posts[0].Category)
	})

	t.Run("database errors are wrapped", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		mock.ExpectExec(`^DELETE\s+FROM\s+posts`).
			WillReturnError(errors.New("db down"))

		err := s.Posts().DeletePost(ctx, 1)
		require.ErrorContains(t, err, "db error: db down")
	})
}

func TestCategoriesRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		mock.ExpectQuery(`^INSERT\s+INTO\s+categories\s+\(name,\s*description\)`).
			WithArgs("Health", nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

		c, err := s.Categories().CreateCategory(ctx, domain.Category{Name: "Health"})
		require.NoError(t, err)
		require.EqualValues(t, 2, c.ID)
	})

	t.Run("rename onto existing name", func(t *testing.T) {
		s, mock := newStoreWithMock(t)
		mock.ExpectExec(`^UPDATE\s+categories`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		_, err := s.Categories().UpdateCategory(ctx, domain.Category{ID: 1, Name: "Health"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestWithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, mock := newStoreWithMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE\s+FROM\s+categories`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Categories().DeleteCategory(ctx, 1)
	})
	require.NoError(t, err)
}
