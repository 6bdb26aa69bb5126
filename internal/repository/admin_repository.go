package repository

import (
	"context"
	"time"

	"lawgan/internal/domain/entity"
)

// AdminRepository persists admin accounts. Accounts are only ever created by
// signup and mutated to record the last successful sign-in; the API never
// deletes them.
type AdminRepository interface {
	// GetByEmail looks up an account by normalized email.
	// Returns (nil, nil) when no account matches.
	GetByEmail(ctx context.Context, email string) (*entity.AdminAccount, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, admin *entity.AdminAccount) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}
