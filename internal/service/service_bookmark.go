package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/models"
)

// bookmarkService implements BookmarkService on top of a BookmarkRepository.
//
// Ownership rule: reads of a foreign bookmark look exactly like reads of a
// missing one, and writes to either are rejected with ErrAccessDenied.
type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	logger             *logger.Logger
}

func NewBookmarkService(bookmarkRepository store.BookmarkRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		logger:             logger,
	}
}

// CreateBookmark stores a new bookmark owned by userID.
func (s *bookmarkService) CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	bookmark, err := s.bookmarkRepository.CreateBookmark(ctx, models.Bookmark{
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Link:        request.Link,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserReferenceNotFound) {
			return models.Bookmark{}, ErrUnauthenticated
		}
		logger.FromContext(ctx).Err(err).Str("func", "*bookmarkService.CreateBookmark").Int64("user_id", userID).Msg("error creating bookmark")
		return models.Bookmark{}, fmt.Errorf("error creating bookmark: %w", err)
	}

	return bookmark, nil
}

// GetBookmarks returns all bookmarks of userID, ordered by id. The slice is
// empty, not nil, when the user has none.
func (s *bookmarkService) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	bookmarks, err := s.bookmarkRepository.GetBookmarks(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookmarkService.GetBookmarks").Int64("user_id", userID).Msg("error getting bookmarks")
		return nil, fmt.Errorf("error getting bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}

	return bookmarks, nil
}

func (s *bookmarkService) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepository.GetBookmarkByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return nil, nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "*bookmarkService.GetBookmarkByID").Int64("id", bookmarkID).Msg("error getting bookmark")
		return nil, fmt.Errorf("error getting bookmark: %w", err)
	}

	if bookmark.UserID != userID {
		return nil, nil
	}

	return &bookmark, nil
}

// EditBookmarkByID applies the fields present in request to bookmarkID.
// A missing bookmark and a bookmark owned by another user both yield
// ErrAccessDenied.
func (s *bookmarkService) EditBookmarkByID(ctx context.Context, userID, bookmarkID int64, request models.EditBookmarkRequest) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if err := s.checkOwnership(ctx, userID, bookmarkID); err != nil {
		return models.Bookmark{}, err
	}

	bookmark, err := s.bookmarkRepository.UpdateBookmark(ctx, models.BookmarkUpdate{
		ID:          bookmarkID,
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Link:        request.Link,
	})
	if err != nil {
		// the row vanished or changed hands after the check
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return models.Bookmark{}, ErrAccessDenied
		}
		log.Err(err).Str("func", "*bookmarkService.EditBookmarkByID").Int64("id", bookmarkID).Msg("error updating bookmark")
		return models.Bookmark{}, fmt.Errorf("error updating bookmark: %w", err)
	}

	return bookmark, nil
}

// DeleteBookmarkByID removes bookmarkID. A missing bookmark and a bookmark
// owned by another user both yield ErrAccessDenied.
func (s *bookmarkService) DeleteBookmarkByID(ctx context.Context, userID, bookmarkID int64) error {
	if err := s.checkOwnership(ctx, userID, bookmarkID); err != nil {
		return err
	}

	if err := s.bookmarkRepository.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return ErrAccessDenied
		}
		logger.FromContext(ctx).Err(err).Str("func", "*bookmarkService.DeleteBookmarkByID").Int64("id", bookmarkID).Msg("error deleting bookmark")
		return fmt.Errorf("error deleting bookmark: %w", err)
	}

	return nil
}

func (s *bookmarkService) checkOwnership(ctx context.Context, userID, bookmarkID int64) error {
	bookmark, err := s.bookmarkRepository.GetBookmarkByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return ErrAccessDenied
		}
		logger.FromContext(ctx).Err(err).Str("func", "*bookmarkService.checkOwnership").Int64("id", bookmarkID).Msg("error getting bookmark")
		return fmt.Errorf("error getting bookmark: %w", err)
	}

	if bookmark.UserID != userID {
		logger.FromContext(ctx).Warn().
			Int64("id", bookmarkID).
			Int64("user_id", userID).
			Msg("attempt to access a bookmark of another user")
		return ErrAccessDenied
	}

	return nil
}
