package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetMe returns the profile of userID. A token whose user has since been
// removed yields ErrUnauthenticated.
func (s *userService) GetMe(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUnauthenticated
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetMe").Int64("id", userID).Msg("error loading user")
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// EditUser applies the fields present in request to the profile of userID.
// Changing the email to one that is already registered yields
// ErrCredentialsTaken.
func (s *userService) EditUser(ctx context.Context, userID int64, request models.EditUserRequest) (models.User, error) {
	user, err := s.userRepository.UpdateUser(ctx, userID, request.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrCredentialsTaken
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.User{}, ErrUnauthenticated
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.EditUser").Int64("id", userID).Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}
