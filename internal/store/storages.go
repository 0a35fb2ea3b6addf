// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer, and owns the underlying connection pool.
type Storages struct {
	UserRepository     UserRepository
	BookmarkRepository BookmarkRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens a connection for the driver selected by cfg.DB (Postgres or
//     SQLite, see [config.DB.DriverName]).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the connection.
//
// The caller must call [Storages.Close] when done.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Str("driver", cfg.DB.DriverName()).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch driver := cfg.DB.DriverName(); driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.DriverName(), err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		BookmarkRepository: NewBookmarkRepository(db, log),
		db:                 db,
	}
}

// Close closes the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
