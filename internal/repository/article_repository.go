// Package repository declares the persistence interfaces the content API is
// written against. The concrete adapter (postgres or sqlite) owns every
// backend detail, including how image bytes are encoded at rest.
package repository

import (
	"context"

	"lawgan/internal/domain/entity"
)

// ArticleRepository persists articles.
//
// Lookup methods return (nil, nil) when no row matches; callers translate that
// into their own not-found errors. Create fills the entity's ID and timestamps
// from the inserted row. Delete returns entity.ErrNotFound when no row matched.
type ArticleRepository interface {
	// List retrieves all articles ordered by creation time descending.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByCategory retrieves articles of one (already normalized) category,
	// ordered by creation time descending.
	ListByCategory(ctx context.Context, category string) ([]*entity.Article, error)
	GetByID(ctx context.Context, id int64) (*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// ExistsBySlug reports whether any article already uses the slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
}
