package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

const postSelect = `SELECT p.id, p.title, p.content, p.image_url, p.category_id, p.author_id,
	p.created_at, p.updated_at, c.id, c.name, c.description
	FROM posts p LEFT JOIN categories c ON c.id = p.category_id`

type postsRepo struct {
	db dbtx
}

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var (
		p                  domain.Post
		imageURL, authorID sql.NullString
		categoryID, catID  sql.NullInt64
		catName, catDesc   sql.NullString
	)
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &imageURL, &categoryID, &authorID,
		&p.CreatedAt, &p.UpdatedAt, &catID, &catName, &catDesc,
	); err != nil {
		return domain.Post{}, err
	}

	p.ImageURL = stringPtr(imageURL)
	p.CategoryID = int64Ptr(categoryID)
	p.AuthorID = stringPtr(authorID)
	if catID.Valid {
		p.Category = &domain.Category{ID: catID.Int64, Name: catName.String, Description: stringPtr(catDesc)}
	}
	return p, nil
}

func (r *postsRepo) ListPosts(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, postSelect+` ORDER BY p.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postsRepo) GetPostByID(ctx context.Context, id int64) (domain.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO posts (title, content, image_url, category_id, author_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.Title, p.Content, optionalString(p.ImageURL), optionalInt64(p.CategoryID), optionalString(p.AuthorID),
	).Scan(&id)
	if err != nil {
		return domain.Post{}, mapConstraint(err)
	}
	return r.GetPostByID(ctx, id)
}

func (r *postsRepo) UpdatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	err := requireAffected(r.db.ExecContext(ctx,
		`UPDATE posts SET title = $1, content = $2, image_url = $3, category_id = $4, updated_at = now()
		 WHERE id = $5`,
		p.Title, p.Content, optionalString(p.ImageURL), optionalInt64(p.CategoryID), p.ID,
	))
	if err != nil {
		return domain.Post{}, err
	}
	return r.GetPostByID(ctx, p.ID)
}

func (r *postsRepo) DeletePost(ctx context.Context, id int64) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id))
}
