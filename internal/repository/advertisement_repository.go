package repository

import (
	"context"

	"lawgan/internal/domain/entity"
)

// AdvertisementRepository persists advertisements.
type AdvertisementRepository interface {
	// List retrieves all advertisements ordered by creation time descending.
	List(ctx context.Context) ([]*entity.Advertisement, error)
	// ListByPage retrieves advertisements tagged with the given placement page.
	ListByPage(ctx context.Context, page string) ([]*entity.Advertisement, error)
	GetByID(ctx context.Context, id int64) (*entity.Advertisement, error)
	Create(ctx context.Context, ad *entity.Advertisement) error
	Update(ctx context.Context, ad *entity.Advertisement) error
	Delete(ctx context.Context, id int64) error
}
