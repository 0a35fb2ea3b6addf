// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-bookmarks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound when no user has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrNoUserWasFound when no user has userID.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUser applies the non-nil fields of update and returns the stored
	// record. A duplicate email yields ErrEmailAlreadyExists.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// BookmarkRepository persists bookmarks.
type BookmarkRepository interface {
	// CreateBookmark inserts bookmark and returns the stored record.
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	// GetBookmarks returns all bookmarks of userID ordered by id.
	GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	// GetBookmarkByID returns ErrBookmarkNotFound when there is no such bookmark.
	GetBookmarkByID(ctx context.Context, bookmarkID int64) (models.Bookmark, error)
	// UpdateBookmark applies the non-nil fields of update to the bookmark
	// identified by update.ID and owned by update.UserID.
	UpdateBookmark(ctx context.Context, update models.BookmarkUpdate) (models.Bookmark, error)
	// DeleteBookmark removes the bookmark bookmarkID owned by userID.
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}
