package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

type categoriesRepo struct {
	db dbtx
}

func scanCategory(row interface{ Scan(...any) error }) (domain.Category, error) {
	var (
		c    domain.Category
		desc sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &desc); err != nil {
		return domain.Category{}, err
	}
	c.Description = stringPtr(desc)
	return c, nil
}

func (r *categoriesRepo) ListCategories(ctx context.Context, offset, limit int) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM categories ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Category, 0, limit)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoriesRepo) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE id = $1`, id))
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE name = $1`, name))
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`,
		c.Name, optionalString(c.Description),
	).Scan(&c.ID)
	if err != nil {
		return domain.Category{}, mapConstraint(err)
	}
	return c, nil
}

func (r *categoriesRepo) UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	err := requireAffected(r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, description = $2 WHERE id = $3`,
		c.Name, optionalString(c.Description), c.ID,
	))
	if err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, id int64) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id))
}

func (r *categoriesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM categories)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return !exists, nil
}
