package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken], and on success stores the
// authenticated user's ID and email in the request context (see
// [utils.WithUser]) before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Int64("user_id", token.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, token.UserID, token.Email)))
	})
}
