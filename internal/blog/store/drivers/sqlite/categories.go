package sqlite

import (
	"context"
	"database/sql"

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
	c.Description = mapNullStringPtr(desc)
	return c, nil
}

func (r *categoriesRepo) ListCategories(ctx context.Context, offset, limit int) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM categories ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Category, 0, limit)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoriesRepo) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE id = ?`, id,
	))
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE name = ?`, name,
	))
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, description) VALUES (?, ?)`,
		c.Name, mapOptionalString(c.Description),
	)
	if err != nil {
		return domain.Category{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}
	c.ID = id
	return c, nil
}

func (r *categoriesRepo) UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	err := requireAffected(r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, description = ? WHERE id = ?`,
		c.Name, mapOptionalString(c.Description), c.ID,
	))
	if err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, id int64) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id))
}

func (r *categoriesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
