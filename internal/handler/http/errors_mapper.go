package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookmarks/internal/app"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
	"github.com/MKhiriev/go-bookmarks/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked top to bottom; the first errors.Is match wins.
// Anything unmatched is a 500.
var errorMappings = []errorMapping{
	{validators.ErrValidationFailed, http.StatusBadRequest, app.MsgValidationFailed},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgValidationFailed},
	{service.ErrInvalidBookmarkID, http.StatusBadRequest, app.MsgInvalidBookmarkID},

	{service.ErrCredentialsTaken, http.StatusForbidden, app.MsgCredentialsTaken},
	{service.ErrCredentialsIncorrect, http.StatusForbidden, app.MsgCredentialsIncorrect},
	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgUnauthorized},

	{service.ErrBookmarkNotFound, http.StatusNotFound, app.MsgNotFound},
}

// errorResponse builds the response body for err.
func errorResponse(err error) models.ErrorResponse {
	status, message := http.StatusInternalServerError, app.MsgInternalServerError
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			status, message = m.status, m.message
			break
		}
	}

	response := models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}

	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		response.Errors = fieldErrors.Messages()
	}

	return response
}

// writeError logs err and writes the mapped error response. Server-side
// failures are logged at error level, client mistakes at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	response := errorResponse(err)

	log := logger.FromRequest(r)
	if response.StatusCode >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("path", r.URL.Path).Int("status", response.StatusCode).Msg("request rejected")
	}

	utils.WriteJSON(w, response, response.StatusCode)
}

// writeStatus writes a bare error response with the given status and message.
func writeStatus(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}, status)
}
