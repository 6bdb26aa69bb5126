// Package postgres provides PostgreSQL implementations of the repository
// interfaces. Image bytes are bound directly as bytea parameters.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

const articleColumns = `id, title, slug, summary, content, category, is_breaking, published, author, image, image_mime, created_at, updated_at`

// ArticleRepo implements repository.ArticleRepository on PostgreSQL.
type ArticleRepo struct{ db *sql.DB }

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

type rowScanner interface{ Scan(dest ...any) error }

func scanArticle(s rowScanner) (*entity.Article, error) {
	var a entity.Article
	var summary, author, mime sql.NullString
	if err := s.Scan(&a.ID, &a.Title, &a.Slug, &summary, &a.Content, &a.Category,
		&a.IsBreaking, &a.Published, &author, &a.Image, &mime, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Summary = summary.String
	a.Author = author.String
	a.ImageMime = mime.String
	return &a, nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 50)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE category = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 20)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByCategory: Scan: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE slug = $1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles (title, slug, summary, content, category, is_breaking, published, author, image, image_mime)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		a.Title, a.Slug, nullStr(a.Summary), a.Content, a.Category,
		a.IsBreaking, a.Published, nullStr(a.Author), a.Image, nullStr(a.ImageMime),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	const query = `
UPDATE articles
SET title = $2, slug = $3, summary = $4, content = $5, category = $6,
    is_breaking = $7, published = $8, author = $9, image = $10, image_mime = $11,
    updated_at = now()
WHERE id = $1
RETURNING updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		a.ID, a.Title, a.Slug, nullStr(a.Summary), a.Content, a.Category,
		a.IsBreaking, a.Published, nullStr(a.Author), a.Image, nullStr(a.ImageMime),
	).Scan(&a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// nullStr maps "" to SQL NULL so optional text columns stay nullable.
func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
