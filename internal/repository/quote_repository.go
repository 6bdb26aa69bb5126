package repository

import (
	"context"

	"lawgan/internal/domain/entity"
)

// QuoteRepository persists quotes.
type QuoteRepository interface {
	List(ctx context.Context) ([]*entity.Quote, error)
	GetByID(ctx context.Context, id int64) (*entity.Quote, error)
	// Count returns the number of stored quotes, used to enforce the quote cap.
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, quote *entity.Quote) error
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id int64) error
}
