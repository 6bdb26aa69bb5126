package repository

import (
	"context"

	"lawgan/internal/domain/entity"
)

// BoardMemberRepository persists editorial board members.
// List is ordered by name ascending for the board page.
type BoardMemberRepository interface {
	List(ctx context.Context) ([]*entity.BoardMember, error)
	GetByID(ctx context.Context, id int64) (*entity.BoardMember, error)
	Create(ctx context.Context, member *entity.BoardMember) error
	Update(ctx context.Context, member *entity.BoardMember) error
	Delete(ctx context.Context, id int64) error
}

// ExecutiveRepository persists executives. List is ordered by name ascending.
type ExecutiveRepository interface {
	List(ctx context.Context) ([]*entity.Executive, error)
	GetByID(ctx context.Context, id int64) (*entity.Executive, error)
	Create(ctx context.Context, exec *entity.Executive) error
	Update(ctx context.Context, exec *entity.Executive) error
	Delete(ctx context.Context, id int64) error
}
