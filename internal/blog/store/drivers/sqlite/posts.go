package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

// postSelect joins the category so reads can embed it.
const postSelect = `SELECT p.id, p.title, p.content, p.image_url, p.category_id, p.author_id,
	p.created_at, p.updated_at, c.id, c.name, c.description
	FROM posts p LEFT JOIN categories c ON c.id = p.category_id`

type postsRepo struct {
	db dbtx
}

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var (
		p          domain.Post
		imageURL   sql.NullString
		categoryID sql.NullInt64
		authorID   sql.NullString
		catID      sql.NullInt64
		catName    sql.NullString
		catDesc    sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&imageURL,
		&categoryID,
		&authorID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&catID,
		&catName,
		&catDesc,
	)
	if err != nil {
		return domain.Post{}, err
	}

	p.ImageURL = mapNullStringPtr(imageURL)
	p.CategoryID = mapNullInt64Ptr(categoryID)
	p.AuthorID = mapNullStringPtr(authorID)
	if catID.Valid {
		p.Category = &domain.Category{
			ID:          catID.Int64,
			Name:        catName.String,
			Description: mapNullStringPtr(catDesc),
		}
	}
	return p, nil
}

func (r *postsRepo) ListPosts(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, postSelect+` ORDER BY p.id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postsRepo) GetPostByID(ctx context.Context, id int64) (domain.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = ?`, id))
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	ts := now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, image_url, category_id, author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Title,
		p.Content,
		mapOptionalString(p.ImageURL),
		mapOptionalInt64(p.CategoryID),
		mapOptionalString(p.AuthorID),
		ts,
		ts,
	)
	if err != nil {
		return domain.Post{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Post{}, err
	}
	return r.GetPostByID(ctx, id)
}

func (r *postsRepo) UpdatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	err := requireAffected(r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, image_url = ?, category_id = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title,
		p.Content,
		mapOptionalString(p.ImageURL),
		mapOptionalInt64(p.CategoryID),
		now(),
		p.ID,
	))
	if err != nil {
		return domain.Post{}, err
	}
	return r.GetPostByID(ctx, p.ID)
}

func (r *postsRepo) DeletePost(ctx context.Context, id int64) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id))
}
