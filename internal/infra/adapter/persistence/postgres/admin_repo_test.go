package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"lawgan/internal/domain/entity"
	pg "lawgan/internal/infra/adapter/persistence/postgres"
)

func TestAdminRepo_GetByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	created := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	login := created.Add(24 * time.Hour)
	want := &entity.AdminAccount{
		ID: 1, Name: "Ada", Email: "ada@lawgan.ng",
		PasswordHash: "$2a$10$hash", CreatedAt: created, LastLogin: login,
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
		WithArgs("ada@lawgan.ng").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "created_at", "last_login",
		}).AddRow(want.ID, want.Name, want.Email, want.PasswordHash, created, login))

	repo := pg.NewAdminRepo(db)
	got, err := repo.GetByEmail(context.Background(), "ada@lawgan.ng")
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAdminRepo_GetByEmail_NullLastLogin(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
		WithArgs("new@lawgan.ng").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "created_at", "last_login",
		}).AddRow(int64(2), "New", "new@lawgan.ng", "h", time.Now(), nil))

	repo := pg.NewAdminRepo(db)
	got, err := repo.GetByEmail(context.Background(), "new@lawgan.ng")
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if !got.LastLogin.IsZero() {
		t.Fatalf("LastLogin = %v, want zero for never-signed-in account", got.LastLogin)
	}
}

func TestAdminRepo_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
		WithArgs("nobody@lawgan.ng").
		WillReturnError(sql.ErrNoRows)

	repo := pg.NewAdminRepo(db)
	got, err := repo.GetByEmail(context.Background(), "nobody@lawgan.ng")
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if got != nil {
		t.Fatalf("GetByEmail miss should return nil, got %+v", got)
	}
}

func TestAdminRepo_ExistsByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)")).
		WithArgs("ada@lawgan.ng").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := pg.NewAdminRepo(db)
	ok, err := repo.ExistsByEmail(context.Background(), "ada@lawgan.ng")
	if err != nil || !ok {
		t.Fatalf("ExistsByEmail err=%v ok=%v", err, ok)
	}
}

func TestAdminRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO admins")).
		WithArgs("Ada", "ada@lawgan.ng", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))

	repo := pg.NewAdminRepo(db)
	a := &entity.AdminAccount{Name: "Ada", Email: "ada@lawgan.ng", PasswordHash: "$2a$10$hash"}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID != 5 || a.CreatedAt.IsZero() {
		t.Fatalf("Create did not backfill id/created_at: %+v", a)
	}
}

func TestAdminRepo_UpdateLastLogin(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	at := time.Now()
	mock.ExpectExec("UPDATE admins").
		WithArgs(int64(1), at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewAdminRepo(db)
	if err := repo.UpdateLastLogin(context.Background(), 1, at); err != nil {
		t.Fatalf("UpdateLastLogin err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
