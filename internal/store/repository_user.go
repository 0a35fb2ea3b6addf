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

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both supported dialects through [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt)
// read back through a RETURNING clause.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - query building failure → wrapped [ErrBuildingSQLQuery].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email equals email.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID retrieves the user identified by userID.
// Returns [ErrNoUserWasFound] when it does not exist.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(r.db.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

// UpdateUser applies the non-nil fields of update to the user identified by
// userID and returns the updated record.
//
// Error handling:
//   - no such user → [ErrNoUserWasFound].
//   - unique violation on email → [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, userID, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case r.db.classify(err) == UniqueViolation:
		return models.User{}, ErrEmailAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
