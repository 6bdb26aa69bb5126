// Package sqlite provides SQLite implementations of the repository interfaces.
// Unlike the postgres adapter, image bytes are stored as bytea-style hex text
// (see imageconv.EncodeHex); the API layer never sees that encoding.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
	"lawgan/internal/repository"
)

const articleColumns = `id, title, slug, summary, content, category, is_breaking, published, author, image, image_mime, created_at, updated_at`

// ArticleRepo implements repository.ArticleRepository on SQLite.
type ArticleRepo struct{ db *sql.DB }

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

type rowScanner interface{ Scan(dest ...any) error }

func scanArticle(s rowScanner) (*entity.Article, error) {
	var a entity.Article
	var summary, author, image, mime sql.NullString
	if err := s.Scan(&a.ID, &a.Title, &a.Slug, &summary, &a.Content, &a.Category,
		&a.IsBreaking, &a.Published, &author, &image, &mime, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Summary = summary.String
	a.Author = author.String
	a.ImageMime = mime.String

	data, err := imageconv.DecodeHex(image.String)
	if err != nil {
		return nil, err
	}
	a.Image = data
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
WHERE category = ?
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
WHERE id = ?`
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
WHERE slug = ?`
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
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = ?)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles (title, slug, summary, content, category, is_breaking, published, author, image, image_mime, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query,
		a.Title, a.Slug, nullStr(a.Summary), a.Content, a.Category,
		a.IsBreaking, a.Published, nullStr(a.Author),
		nullStr(imageconv.EncodeHex(a.Image)), nullStr(a.ImageMime), now, now)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	a.ID = id
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	const query = `
UPDATE articles
SET title = ?, slug = ?, summary = ?, content = ?, category = ?,
    is_breaking = ?, published = ?, author = ?, image = ?, image_mime = ?,
    updated_at = ?
WHERE id = ?`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query,
		a.Title, a.Slug, nullStr(a.Summary), a.Content, a.Category,
		a.IsBreaking, a.Published, nullStr(a.Author),
		nullStr(imageconv.EncodeHex(a.Image)), nullStr(a.ImageMime), now, a.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if err := rowsAffectedErr(res, "Update"); err != nil {
		return err
	}
	a.UpdatedAt = now
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
}

// nullStr maps "" to SQL NULL so optional text columns stay nullable.
func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nowUTC is the single timestamp source for this adapter. SQLite has no
// now() with timezone semantics, so timestamps are set in Go.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// rowsAffectedErr maps a zero-row mutation to entity.ErrNotFound.
func rowsAffectedErr(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: RowsAffected: %w", op, err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
