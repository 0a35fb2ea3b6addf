// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded SQL schema of the application, one
// directory per supported dialect, and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Supported dialect names; they match the database driver names used by the
// configuration.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// ErrUnsupportedDialect is returned for a dialect without embedded migrations.
var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies every pending up migration of dialect to db and returns the
// number of migrations applied.
func Migrate(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	provider, err := newProvider(db, dialect)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}

func newProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	fsys, err := fs.Sub(embedMigrations, dialect)
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	return goose.NewProvider(gooseDialect, db, fsys)
}
