package postgres

import (
	"context"

	"github.com/aussiebroadwan/blog/internal/blog/store/drivers/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// ApplyMigrations runs the embedded goose migrations against the pool.
func (s *Store) ApplyMigrations() error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(context.Background(), s.db, ".")
}
