package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

// AdvertisementRepo implements repository.AdvertisementRepository on PostgreSQL.
type AdvertisementRepo struct{ db *sql.DB }

func NewAdvertisementRepo(db *sql.DB) repository.AdvertisementRepository {
	return &AdvertisementRepo{db: db}
}

func scanAdvertisement(s rowScanner) (*entity.Advertisement, error) {
	var ad entity.Advertisement
	var mime sql.NullString
	if err := s.Scan(&ad.ID, &ad.Image, &mime, &ad.URL, &ad.Owner, &ad.Page,
		&ad.CreatedAt, &ad.UpdatedAt); err != nil {
		return nil, err
	}
	ad.ImageMime = mime.String
	return &ad, nil
}

func (repo *AdvertisementRepo) List(ctx context.Context) ([]*entity.Advertisement, error) {
	const query = `
SELECT id, image, image_mime, url, owner, page, created_at, updated_at
FROM advertisements
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ads := make([]*entity.Advertisement, 0, 10)
	for rows.Next() {
		ad, err := scanAdvertisement(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (repo *AdvertisementRepo) ListByPage(ctx context.Context, page string) ([]*entity.Advertisement, error) {
	const query = `
SELECT id, image, image_mime, url, owner, page, created_at, updated_at
FROM advertisements
WHERE page = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("ListByPage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ads := make([]*entity.Advertisement, 0, 5)
	for rows.Next() {
		ad, err := scanAdvertisement(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByPage: Scan: %w", err)
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (repo *AdvertisementRepo) GetByID(ctx context.Context, id int64) (*entity.Advertisement, error) {
	const query = `
SELECT id, image, image_mime, url, owner, page, created_at, updated_at
FROM advertisements
WHERE id = $1`
	ad, err := scanAdvertisement(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return ad, nil
}

func (repo *AdvertisementRepo) Create(ctx context.Context, ad *entity.Advertisement) error {
	const query = `
INSERT INTO advertisements (image, image_mime, url, owner, page)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		ad.Image, nullStr(ad.ImageMime), ad.URL, ad.Owner, ad.Page).
		Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AdvertisementRepo) Update(ctx context.Context, ad *entity.Advertisement) error {
	const query = `
UPDATE advertisements
SET image = $2, image_mime = $3, url = $4, owner = $5, page = $6, updated_at = now()
WHERE id = $1
RETURNING updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		ad.ID, ad.Image, nullStr(ad.ImageMime), ad.URL, ad.Owner, ad.Page).
		Scan(&ad.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *AdvertisementRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
}
