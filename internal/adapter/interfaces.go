// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-bookmarks REST API.
//
// The primary abstraction is [BookmarksAPI], which hides request building,
// bearer token handling and response decoding behind typed methods. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors in errors.go so
// that callers can use [errors.Is] (e.g. [ErrCredentialsTaken] for a taken
// email, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bookmarks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bookmarks_api_mock.go -package=mock

// BookmarksAPI defines typed access to the go-bookmarks server.
type BookmarksAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// SignUp registers a new account and stores the returned access token.
	SignUp(ctx context.Context, req models.AuthRequest) (string, error)

	// SignIn authenticates an existing account and stores the returned
	// access token.
	SignIn(ctx context.Context, req models.AuthRequest) (string, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.User, error)

	// EditMe applies a partial profile update and returns the updated user.
	EditMe(ctx context.Context, req models.EditUserRequest) (models.User, error)

	// ListBookmarks returns the authenticated user's bookmarks, oldest first.
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)

	// GetBookmark returns one bookmark. A missing or foreign bookmark yields
	// [ErrNotFound].
	GetBookmark(ctx context.Context, bookmarkID int64) (models.Bookmark, error)

	// CreateBookmark stores a new bookmark and returns it.
	CreateBookmark(ctx context.Context, req models.CreateBookmarkRequest) (models.Bookmark, error)

	// EditBookmark applies a partial update. A missing or foreign bookmark
	// yields [ErrAccessDenied].
	EditBookmark(ctx context.Context, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error)

	// DeleteBookmark removes a bookmark. A missing or foreign bookmark yields
	// [ErrAccessDenied].
	DeleteBookmark(ctx context.Context, bookmarkID int64) error

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
