package service

import (
	"context"

	"github.com/MKhiriev/go-bookmarks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService registers and authenticates users and manages access tokens.
type AuthService interface {
	SignUp(ctx context.Context, request models.AuthRequest) (models.Token, error)
	SignIn(ctx context.Context, request models.AuthRequest) (models.Token, error)
	SignToken(ctx context.Context, userID int64, email string) (models.Token, error)
	ParseToken(ctx context.Context, rawToken string) (models.Token, error)
}

// UserService reads and edits the profile of the authenticated user.
type UserService interface {
	GetMe(ctx context.Context, userID int64) (models.User, error)
	EditUser(ctx context.Context, userID int64, request models.EditUserRequest) (models.User, error)
}

// BookmarkService manages bookmarks on behalf of their owner. Every method
// takes the caller's user ID; a bookmark of another user is never returned
// or modified.
type BookmarkService interface {
	CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error)
	GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	// GetBookmarkByID returns nil (and no error) when the bookmark does not
	// exist or belongs to someone else.
	GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (*models.Bookmark, error)
	EditBookmarkByID(ctx context.Context, userID, bookmarkID int64, request models.EditBookmarkRequest) (models.Bookmark, error)
	DeleteBookmarkByID(ctx context.Context, userID, bookmarkID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
