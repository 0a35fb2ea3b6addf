package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/crypto"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

// AccessTokenDuration is the lifetime of every issued access token.
const AccessTokenDuration = 15 * time.Minute

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher
// for argon2id password hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHasher derives and verifies the stored password hashes.
	passwordHasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher, with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, passwordHasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  AccessTokenDuration,
		logger:         logger,
	}
}

// SignUp creates a new account for request.Email and returns an access token
// for it. The password is stored only as an argon2id hash.
//
// Returns ErrCredentialsTaken if the email is already registered.
func (a *authService) SignUp(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	hash, err := a.passwordHasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("error hashing password")
		return models.Token{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Email: request.Email, Hash: hash})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("func", "*authService.SignUp").Str("email", request.Email).Msg("email is already registered")
			return models.Token{}, ErrCredentialsTaken
		}
		log.Err(err).Str("func", "*authService.SignUp").Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.SignToken(ctx, user.UserID, user.Email)
}

// SignIn checks request.Password against the stored hash of request.Email
// and returns a fresh access token.
//
// An unknown email and a wrong password both yield ErrCredentialsIncorrect.
func (a *authService) SignIn(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("func", "*authService.SignIn").Str("email", request.Email).Msg("unknown email")
			return models.Token{}, ErrCredentialsIncorrect
		}
		log.Err(err).Str("func", "*authService.SignIn").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	matches, err := a.passwordHasher.Verify(request.Password, user.Hash)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Int64("id", user.UserID).Msg("stored password hash is unusable")
		return models.Token{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !matches {
		log.Info().Str("func", "*authService.SignIn").Int64("id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrCredentialsIncorrect
	}

	return a.SignToken(ctx, user.UserID, user.Email)
}

// SignToken issues a signed JWT with subject userID and the email claim.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) SignToken(ctx context.Context, userID int64, email string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.SignToken").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. An expired token yields ErrTokenIsExpired; any other
// failure (wrong issuer, bad signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, rawToken string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(rawToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
