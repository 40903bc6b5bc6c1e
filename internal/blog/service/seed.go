package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

type sampleCategory struct {
	name, description string
	post              domain.Post
}

var samples = []sampleCategory{
	{
		name:        "Technology",
		description: "Articles about programming, software, and tech trends",
		post: domain.Post{
			Title:    "Getting Started with Go",
			Content:  "Go is a statically typed, compiled language designed for building simple, reliable and efficient software. Its standard library covers HTTP servers, JSON and concurrency out of the box.",
			ImageURL: strPtr("https://go.dev/images/go-logo-blue.svg"),
		},
	},
	{
		name:        "Health",
		description: "Articles about health, fitness, and wellness",
		post: domain.Post{
			Title:    "The Benefits of Regular Exercise",
			Content:  "Regular physical activity can improve your muscle strength and boost your endurance. Exercise delivers oxygen and nutrients to your tissues and helps your cardiovascular system work more efficiently.",
			ImageURL: strPtr("https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=1470&q=80"),
		},
	},
	{
		name:        "Finance",
		description: "Articles about personal finance, investing, and economy",
		post: domain.Post{
			Title:    "Investing 101: Getting Started",
			Content:  "Investing is the act of allocating resources, usually money, with the expectation of generating an income or profit. There are many types of investments, including stocks, bonds, real estate, and more.",
			ImageURL: strPtr("https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?auto=format&fit=crop&w=1470&q=80"),
		},
	},
}

func strPtr(s string) *string { return &s }

// SeedSampleData fills an empty blog with three categories and a post in
// each. It does nothing once any category exists.
func SeedSampleData(ctx context.Context, st store.Store) error {
	empty, err := st.Categories().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	err = st.WithTx(ctx, func(tx store.Tx) error {
		for _, s := range samples {
			c, err := tx.Categories().CreateCategory(ctx, domain.Category{
				Name:        s.name,
				Description: strPtr(s.description),
			})
			if err != nil {
				return err
			}

			p := s.post
			p.CategoryID = &c.ID
			if _, err := tx.Posts().CreatePost(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("database initialized with sample data", slog.Int("categories", len(samples)))
	return nil
}
