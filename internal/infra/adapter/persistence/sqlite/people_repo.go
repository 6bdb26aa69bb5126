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

// BoardMemberRepo implements repository.BoardMemberRepository on SQLite.
type BoardMemberRepo struct{ db *sql.DB }

func NewBoardMemberRepo(db *sql.DB) repository.BoardMemberRepository {
	return &BoardMemberRepo{db: db}
}

func scanBoardMember(s rowScanner) (*entity.BoardMember, error) {
	var m entity.BoardMember
	var image, mime, about sql.NullString
	if err := s.Scan(&m.ID, &m.Name, &image, &mime, &about, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.ImageMime = mime.String
	m.About = about.String

	data, err := imageconv.DecodeHex(image.String)
	if err != nil {
		return nil, err
	}
	m.Image = data
	return &m, nil
}

func (repo *BoardMemberRepo) List(ctx context.Context) ([]*entity.BoardMember, error) {
	const query = `
SELECT id, name, image, image_mime, about, created_at
FROM editorial_boards
ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	members := make([]*entity.BoardMember, 0, 20)
	for rows.Next() {
		m, err := scanBoardMember(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (repo *BoardMemberRepo) GetByID(ctx context.Context, id int64) (*entity.BoardMember, error) {
	const query = `
SELECT id, name, image, image_mime, about, created_at
FROM editorial_boards
WHERE id = ?`
	m, err := scanBoardMember(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return m, nil
}

func (repo *BoardMemberRepo) Create(ctx context.Context, m *entity.BoardMember) error {
	const query = `
INSERT INTO editorial_boards (name, image, image_mime, about, created_at)
VALUES (?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query,
		m.Name, nullStr(imageconv.EncodeHex(m.Image)), nullStr(m.ImageMime), nullStr(m.About), now)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	m.ID = id
	m.CreatedAt = now
	return nil
}

func (repo *BoardMemberRepo) Update(ctx context.Context, m *entity.BoardMember) error {
	const query = `
UPDATE editorial_boards
SET name = ?, image = ?, image_mime = ?, about = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		m.Name, nullStr(imageconv.EncodeHex(m.Image)), nullStr(m.ImageMime), nullStr(m.About), m.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return rowsAffectedErr(res, "Update")
}

func (repo *BoardMemberRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM editorial_boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
}

// ExecutiveRepo implements repository.ExecutiveRepository on SQLite.
type ExecutiveRepo struct{ db *sql.DB }

func NewExecutiveRepo(db *sql.DB) repository.ExecutiveRepository {
	return &ExecutiveRepo{db: db}
}

func scanExecutive(s rowScanner) (*entity.Executive, error) {
	var e entity.Executive
	var position, image, mime, about sql.NullString
	if err := s.Scan(&e.ID, &e.Name, &position, &image, &mime, &about, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Position = position.String
	e.ImageMime = mime.String
	e.About = about.String

	data, err := imageconv.DecodeHex(image.String)
	if err != nil {
		return nil, err
	}
	e.Image = data
	return &e, nil
}

func (repo *ExecutiveRepo) List(ctx context.Context) ([]*entity.Executive, error) {
	const query = `
SELECT id, name, position, image, image_mime, about, created_at
FROM executives
ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	execs := make([]*entity.Executive, 0, 10)
	for rows.Next() {
		e, err := scanExecutive(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		execs = append(execs, e)
	}
	return execs, rows.Err()
}

func (repo *ExecutiveRepo) GetByID(ctx context.Context, id int64) (*entity.Executive, error) {
	const query = `
SELECT id, name, position, image, image_mime, about, created_at
FROM executives
WHERE id = ?`
	e, err := scanExecutive(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return e, nil
}

func (repo *ExecutiveRepo) Create(ctx context.Context, e *entity.Executive) error {
	const query = `
INSERT INTO executives (name, position, image, image_mime, about, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := repo.db.ExecContext(ctx, query,
		e.Name, nullStr(e.Position), nullStr(imageconv.EncodeHex(e.Image)),
		nullStr(e.ImageMime), nullStr(e.About), now)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	e.ID = id
	e.CreatedAt = now
	return nil
}

func (repo *ExecutiveRepo) Update(ctx context.Context, e *entity.Executive) error {
	const query = `
UPDATE executives
SET name = ?, position = ?, image = ?, image_mime = ?, about = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		e.Name, nullStr(e.Position), nullStr(imageconv.EncodeHex(e.Image)),
		nullStr(e.ImageMime), nullStr(e.About), e.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return rowsAffectedErr(res, "Update")
}

func (repo *ExecutiveRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM executives WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
}
