package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

// BoardMemberRepo implements repository.BoardMemberRepository on PostgreSQL.
type BoardMemberRepo struct{ db *sql.DB }

func NewBoardMemberRepo(db *sql.DB) repository.BoardMemberRepository {
	return &BoardMemberRepo{db: db}
}

func scanBoardMember(s rowScanner) (*entity.BoardMember, error) {
	var m entity.BoardMember
	var mime, about sql.NullString
	if err := s.Scan(&m.ID, &m.Name, &m.Image, &mime, &about, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.ImageMime = mime.String
	m.About = about.String
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
WHERE id = $1`
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
INSERT INTO editorial_boards (name, image, image_mime, about)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		m.Name, m.Image, nullStr(m.ImageMime), nullStr(m.About)).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *BoardMemberRepo) Update(ctx context.Context, m *entity.BoardMember) error {
	const query = `
UPDATE editorial_boards
SET name = $2, image = $3, image_mime = $4, about = $5
WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Image, nullStr(m.ImageMime), nullStr(m.About))
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return rowsAffectedErr(res, "Update")
}

func (repo *BoardMemberRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM editorial_boards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
}

// ExecutiveRepo implements repository.ExecutiveRepository on PostgreSQL.
type ExecutiveRepo struct{ db *sql.DB }

func NewExecutiveRepo(db *sql.DB) repository.ExecutiveRepository {
	return &ExecutiveRepo{db: db}
}

func scanExecutive(s rowScanner) (*entity.Executive, error) {
	var e entity.Executive
	var position, mime, about sql.NullString
	if err := s.Scan(&e.ID, &e.Name, &position, &e.Image, &mime, &about, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Position = position.String
	e.ImageMime = mime.String
	e.About = about.String
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
WHERE id = $1`
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
INSERT INTO executives (name, position, image, image_mime, about)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		e.Name, nullStr(e.Position), e.Image, nullStr(e.ImageMime), nullStr(e.About)).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ExecutiveRepo) Update(ctx context.Context, e *entity.Executive) error {
	const query = `
UPDATE executives
SET name = $2, position = $3, image = $4, image_mime = $5, about = $6
WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query,
		e.ID, e.Name, nullStr(e.Position), e.Image, nullStr(e.ImageMime), nullStr(e.About))
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return rowsAffectedErr(res, "Update")
}

func (repo *ExecutiveRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM executives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return rowsAffectedErr(res, "Delete")
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
