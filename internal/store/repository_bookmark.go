// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/models"
)

// bookmarkRepository is the SQL implementation of [BookmarkRepository] over
// the "bookmarks" table.
type bookmarkRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateBookmark inserts bookmark and returns the stored record.
// A bookmark referencing a missing user yields [ErrUserReferenceNotFound].
func (r *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBookmarkQuery(r.db.builder, bookmark)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("error building query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBookmark(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Bookmark{}, ErrUserReferenceNotFound
		}
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("error creating bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetBookmarks returns every bookmark of userID ordered by id. The result is
// never nil.
func (r *bookmarkRepository) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBookmarksQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetBookmarks").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetBookmarks").Msg("error querying bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			log.Err(err).Str("func", "*bookmarkRepository.GetBookmarks").Msg("error scanning bookmark")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetBookmarks").Msg("error iterating bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

// GetBookmarkByID returns the bookmark bookmarkID regardless of its owner;
// ownership is checked by the caller. Returns [ErrBookmarkNotFound] when the
// bookmark does not exist.
func (r *bookmarkRepository) GetBookmarkByID(ctx context.Context, bookmarkID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBookmarkByIDQuery(r.db.builder, bookmarkID)
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bookmark, err := scanBookmark(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}
		log.Err(err).Str("func", "*bookmarkRepository.GetBookmarkByID").Msg("error getting bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return bookmark, nil
}

// UpdateBookmark applies the non-nil fields of update to the bookmark
// update.ID owned by update.UserID. Returns [ErrBookmarkNotFound] when no
// such bookmark is owned by that user.
func (r *bookmarkRepository) UpdateBookmark(ctx context.Context, update models.BookmarkUpdate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookmarkQuery(r.db.builder, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.UpdateBookmark").Msg("error building query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanBookmark(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}
		log.Err(err).Str("func", "*bookmarkRepository.UpdateBookmark").Msg("error updating bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteBookmark removes the bookmark bookmarkID owned by userID. Returns
// [ErrBookmarkNotFound] when nothing was deleted.
func (r *bookmarkRepository) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookmarkQuery(r.db.builder, userID, bookmarkID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Msg("error deleting bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
