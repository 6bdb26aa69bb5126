package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
	"lawgan/internal/repository"
)

// AdvertisementRepo implements repository.AdvertisementRepository on SQLite.
type AdvertisementRepo struct{ db *sql.DB }

func NewAdvertisementRepo(db *sql.DB) repository.AdvertisementRepository {
	return &AdvertisementRepo{db: db}
}

func scanAdvertisement(s rowScanner) (*entity.Advertisement, error) {
	var ad entity.Advertisement
	var image, mime sql.NullString
	if err := s.Scan(&ad.ID, &image, &mime, &ad.URL, &ad.Owner, &ad.Page,
		&ad.CreatedAt, &ad.UpdatedAt); err != nil {
		return nil, err
	}
	ad.ImageMime = mime.String

	data, err := imageconv.DecodeHex(image.String)
	if err != nil {
		return nil, err
	}
	ad.Image = data
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
WHERE page = ?
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
WHERE id = ?`
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
INSERT INTO advertisements (image, image_mime, url, owner, page, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query,
		imageconv.EncodeHex(ad.Image), nullStr(ad.ImageMime), ad.URL, ad.Owner, ad.Page, now, now)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	ad.ID = id
	ad.CreatedAt = now
	ad.UpdatedAt = now
	return nil
}

func (repo *AdvertisementRepo) Update(ctx context.Context, ad *entity.Advertisement) error {
	const query = `
UPDATE advertisements
SET image = ?, image_mime = ?, url = ?, owner = ?, page = ?, updated_at = ?
WHERE id = ?`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query,
		imageconv.EncodeHex(ad.Image), nullStr(ad.ImageMime), ad.URL, ad.Owner, ad.Page, now, ad.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if err := rowsAffectedErr(res, "Update"); err != nil {
		return err
	}
	ad.UpdatedAt = now
	return nil
}

func (repo *AdvertisementRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
}
