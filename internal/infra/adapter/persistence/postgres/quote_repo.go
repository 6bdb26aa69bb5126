package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

// QuoteRepo implements repository.QuoteRepository on PostgreSQL.
type QuoteRepo struct{ db *sql.DB }

func NewQuoteRepo(db *sql.DB) repository.QuoteRepository {
	return &QuoteRepo{db: db}
}

func (repo *QuoteRepo) List(ctx context.Context) ([]*entity.Quote, error) {
	const query = `
SELECT id, title, author, created_at, updated_at
FROM quotes
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	quotes := make([]*entity.Quote, 0, entity.MaxQuotes)
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.Title, &q.Author, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		quotes = append(quotes, &q)
	}
	return quotes, rows.Err()
}

func (repo *QuoteRepo) GetByID(ctx context.Context, id int64) (*entity.Quote, error) {
	const query = `
SELECT id, title, author, created_at, updated_at
FROM quotes
WHERE id = $1`
	var q entity.Quote
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&q.ID, &q.Title, &q.Author, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &q, nil
}

func (repo *QuoteRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM quotes`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *QuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	const query = `
INSERT INTO quotes (title, author)
VALUES ($1, $2)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query, q.Title, q.Author).
		Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *QuoteRepo) Update(ctx context.Context, q *entity.Quote) error {
	const query = `
UPDATE quotes
SET title = $2, author = $3, updated_at = now()
WHERE id = $1
RETURNING updated_at`
	err := repo.db.QueryRowContext(ctx, query, q.ID, q.Title, q.Author).Scan(&q.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *QuoteRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
}
