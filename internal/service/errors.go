package service

import "errors"

var (
	ErrCredentialsTaken     = errors.New("credentials taken")
	ErrCredentialsIncorrect = errors.New("credentials incorrect")
	ErrAccessDenied         = errors.New("access to resource denied")
	ErrUnauthenticated      = errors.New("unauthenticated")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidBookmarkID = errors.New("invalid bookmark id")
	ErrBookmarkNotFound  = errors.New("bookmark not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
