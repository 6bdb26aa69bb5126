package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

// AdminRepo implements repository.AdminRepository on SQLite.
type AdminRepo struct{ db *sql.DB }

func NewAdminRepo(db *sql.DB) repository.AdminRepository {
	return &AdminRepo{db: db}
}

func (repo *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.AdminAccount, error) {
	const query = `
SELECT id, name, email, password_hash, created_at, last_login
FROM admins
WHERE email = ?`
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
	const query = `SELECT EXISTS(SELECT 1 FROM admins WHERE email = ?)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return exists, nil
}

func (repo *AdminRepo) Create(ctx context.Context, a *entity.AdminAccount) error {
	const query = `
INSERT INTO admins (name, email, password_hash, created_at)
VALUES (?, ?, ?, ?)`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query, a.Name, a.Email, a.PasswordHash, now)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	a.ID = id
	a.CreatedAt = now
	return nil
}

func (repo *AdminRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE admins SET last_login = ? WHERE id = ?`
	if _, err := repo.db.ExecContext(ctx, query, at, id); err != nil {
		return fmt.Errorf("UpdateLastLogin: %w", err)
	}
	return nil
}
