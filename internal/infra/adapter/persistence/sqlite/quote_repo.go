package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

// QuoteRepo implements repository.QuoteRepository on SQLite.
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
WHERE id = ?`
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
	var count int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *QuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	const query = `
INSERT INTO quotes (title, author, created_at, updated_at)
VALUES (?, ?, ?, ?)`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query, q.Title, q.Author, now, now)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	q.ID = id
	q.CreatedAt = now
	q.UpdatedAt = now
	return nil
}

func (repo *QuoteRepo) Update(ctx context.Context, q *entity.Quote) error {
	const query = `
UPDATE quotes
SET title = ?, author = ?, updated_at = ?
WHERE id = ?`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query, q.Title, q.Author, now, q.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if err := rowsAffectedErr(res, "Update"); err != nil {
		return err
	}
	q.UpdatedAt = now
	return nil
}

func (repo *QuoteRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
}
