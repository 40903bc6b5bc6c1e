package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
)

type PostService struct {
	Store store.Store
}

func mapPostErr(err error, id int64) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: post %d not found", ErrNotFound, id)
	case errors.Is(err, store.ErrInvalidReference):
		return fmt.Errorf("%w: category not found", ErrBadRequest)
	default:
		return err
	}
}

func (s *PostService) List(ctx context.Context, page Page) ([]domain.Post, error) {
	page, err := page.Validate()
	if err != nil {
		return nil, err
	}
	return s.Store.Posts().ListPosts(ctx, page.Skip, page.Limit)
}

func (s *PostService) Get(ctx context.Context, id int64) (domain.Post, error) {
	p, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		return domain.Post{}, mapPostErr(err, id)
	}
	return p, nil
}

// Create inserts a post. A category_id must name an existing category.
func (s *PostService) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	if p.CategoryID != nil {
		if err := s.requireCategory(ctx, s.Store, *p.CategoryID); err != nil {
			return domain.Post{}, err
		}
	}

	created, err := s.Store.Posts().CreatePost(ctx, p)
	if err != nil {
		return domain.Post{}, mapPostErr(err, 0)
	}
	return created, nil
}

// Update applies a partial update; fields the patch leaves nil are kept.
func (s *PostService) Update(ctx context.Context, id int64, patch domain.PostPatch) (domain.Post, error) {
	var updated domain.Post
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Posts().GetPostByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.CategoryID != nil && !patch.ClearCategory {
			if err := s.requireCategory(ctx, tx, *patch.CategoryID); err != nil {
				return err
			}
		}

		patch.Apply(&p)
		updated, err = tx.Posts().UpdatePost(ctx, p)
		return err
	})
	if err != nil {
		return domain.Post{}, mapPostErr(err, id)
	}
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.Store.Posts().DeletePost(ctx, id); err != nil {
		return mapPostErr(err, id)
	}
	return nil
}

func (s *PostService) requireCategory(ctx context.Context, st store.Store, id int64) error {
	if _, err := st.Categories().GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: category %d not found", ErrBadRequest, id)
		}
		return err
	}
	return nil
}
