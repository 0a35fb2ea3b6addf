package adapter

import "errors"

// Errors returned by the adapter for non-2xx responses. The server's JSON
// error message is appended, so callers can match on the sentinel with
// [errors.Is] and still show the detail.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrCredentialsTaken     = errors.New("credentials taken")
	ErrCredentialsIncorrect = errors.New("credentials incorrect")
	ErrAccessDenied         = errors.New("access denied")

	ErrNoToken = errors.New("no access token")
)
