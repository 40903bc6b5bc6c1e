package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
)

type CategoryService struct {
	Store store.Store
}

func mapCategoryErr(err error, id int64) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: category %d not found", ErrNotFound, id)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: category name already exists", ErrConflict)
	default:
		return err
	}
}

func (s *CategoryService) List(ctx context.Context, page Page) ([]domain.Category, error) {
	page, err := page.Validate()
	if err != nil {
		return nil, err
	}
	return s.Store.Categories().ListCategories(ctx, page.Skip, page.Limit)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (domain.Category, error) {
	c, err := s.Store.Categories().GetCategoryByID(ctx, id)
	if err != nil {
		return domain.Category{}, mapCategoryErr(err, id)
	}
	return c, nil
}

// Create inserts a category; the unique index on name is authoritative, the
// lookup only gives the common case a clear answer.
func (s *CategoryService) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	if err := s.checkName(ctx, c.Name, 0); err != nil {
		return domain.Category{}, err
	}

	created, err := s.Store.Categories().CreateCategory(ctx, c)
	if err != nil {
		return domain.Category{}, mapCategoryErr(err, 0)
	}
	return created, nil
}

// Update replaces name and description. Keeping its own name is fine.
func (s *CategoryService) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	if _, err := s.Store.Categories().GetCategoryByID(ctx, c.ID); err != nil {
		return domain.Category{}, mapCategoryErr(err, c.ID)
	}
	if err := s.checkName(ctx, c.Name, c.ID); err != nil {
		return domain.Category{}, err
	}

	updated, err := s.Store.Categories().UpdateCategory(ctx, c)
	if err != nil {
		return domain.Category{}, mapCategoryErr(err, c.ID)
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.Store.Categories().DeleteCategory(ctx, id); err != nil {
		return mapCategoryErr(err, id)
	}
	return nil
}

// checkName fails with ErrConflict if name belongs to a category other
// than self.
func (s *CategoryService) checkName(ctx context.Context, name string, self int64) error {
	other, err := s.Store.Categories().GetCategoryByName(ctx, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != self:
		return fmt.Errorf("%w: category name already exists", ErrConflict)
	default:
		return nil
	}
}
