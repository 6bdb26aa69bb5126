package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

// AdminRepo implements repository.AdminRepository on PostgreSQL.
type AdminRepo struct{ db *sql.DB }

func NewAdminRepo(db *sql.DB) repository.AdminRepository {
	return &AdminRepo{db: db}
}

func (repo *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.AdminAccount, error) {
	const query = `
SELECT id, name, email, password_hash, created_at, last_login
FROM admins
WHERE email = $1`
	var a entity.AdminAccount
	var lastLogin sql.NullTime
	err := repo.db.QueryRowContext(ctx, query, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &lastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	a.LastLogin = lastLogin.Time
	return &a, nil
}

func (repo *AdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return exists, nil
}

func (repo *AdminRepo) Create(ctx context.Context, a *entity.AdminAccount) error {
	const query = `
INSERT INTO admins (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, a.Name, a.Email, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AdminRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE admins SET last_login = $2 WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id, at); err != nil {
		return fmt.Errorf("UpdateLastLogin: %w", err)
	}
	return nil
}
