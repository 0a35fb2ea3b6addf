// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/migrations"
)

// DB is a database connection pool together with the dialect specific
// pieces the repositories need: a squirrel statement builder with the right
// placeholder format and a driver error classifier.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}

	db.logger.Info().Str("func", "*DB.Migrate").Int("applied", applied).Msg("database schema is up to date")
	return nil
}

// classify is a nil-safe shortcut for db.errorClassificator.Classify.
func (db *DB) classify(err error) ErrorClassification {
	if err == nil || db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
