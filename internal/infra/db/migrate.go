package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

var postgresStatements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_login TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		summary TEXT,
		content TEXT NOT NULL,
		category TEXT NOT NULL,
		is_breaking BOOLEAN NOT NULL DEFAULT FALSE,
		published BOOLEAN NOT NULL DEFAULT TRUE,
		author TEXT,
		image BYTEA,
		image_mime TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles (category)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS editorial_boards (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		image BYTEA,
		image_mime TEXT,
		about TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS executives (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT,
		image BYTEA,
		image_mime TEXT,
		about TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS advertisements (
		id BIGSERIAL PRIMARY KEY,
		image BYTEA,
		image_mime TEXT,
		url TEXT,
		owner TEXT,
		page TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_advertisements_page ON advertisements (page)`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		last_login TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		summary TEXT,
		content TEXT NOT NULL,
		category TEXT NOT NULL,
		is_breaking INTEGER NOT NULL DEFAULT 0,
		published INTEGER NOT NULL DEFAULT 1,
		author TEXT,
		image TEXT,
		image_mime TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles (category)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS editorial_boards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		image TEXT,
		image_mime TEXT,
		about TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS executives (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		position TEXT,
		image TEXT,
		image_mime TEXT,
		about TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS advertisements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		image TEXT,
		image_mime TEXT,
		url TEXT,
		owner TEXT,
		page TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_advertisements_page ON advertisements (page)`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
}

// Migrate applies the schema for the given backend. Every statement is
// idempotent, so running it on every startup is safe.
func Migrate(ctx context.Context, database *sql.DB, backend string) error {
	var statements []string
	switch backend {
	case "sqlite":
		statements = sqliteStatements
	default:
		statements = postgresStatements
	}

	for _, stmt := range statements {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	slog.Info("database schema up to date", slog.String("backend", backend))
	return nil
}
