package domain

import "time"

type Post struct {
	ID         int64
	Title      string
	Content    string
	ImageURL   *string
	CategoryID *int64
	AuthorID   *string

	// Category is populated on reads when CategoryID resolves.
	Category *Category

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostPatch carries a partial update. Nil pointers leave the field alone,
// the Clear flags null the optional columns.
type PostPatch struct {
	Title    *string
	Content  *string
	ImageURL *string

	ClearImageURL bool

	CategoryID    *int64
	ClearCategory bool
}

// Apply overwrites the supplied fields of p.
func (patch PostPatch) Apply(p *Post) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	switch {
	case patch.ClearImageURL:
		p.ImageURL = nil
	case patch.ImageURL != nil:
		v := *patch.ImageURL
		p.ImageURL = &v
	}
	switch {
	case patch.ClearCategory:
		p.CategoryID = nil
		p.Category = nil
	case patch.CategoryID != nil:
		v := *patch.CategoryID
		p.CategoryID = &v
		p.Category = nil
	}
}
