// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It names the constraint a failed statement violated, so repositories can
// turn driver errors into domain errors without knowing the driver.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and errors that are not
	// constraint violations.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a UNIQUE (or primary key) constraint failure.
	UniqueViolation

	// ForeignKeyViolation indicates a FOREIGN KEY constraint failure.
	ForeignKeyViolation

	// NotNullViolation indicates a NOT NULL constraint failure.
	NotNullViolation
)

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and maps its SQLSTATE code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
// It inspects the extended result code of a sqlite3.Error.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	}

	return Unclassified
}
