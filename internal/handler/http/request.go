package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
)

// decodeAndValidate is the explicit validation step every handler with a
// body runs before calling a service. Malformed JSON is reported the same
// way as a failed field rule.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		message := "body must be a single JSON object"
		if errors.Is(err, utils.ErrEmptyBody) {
			message = "body should not be empty"
		}
		return validators.FieldErrors{{Field: "body", Rule: "json", Message: message}}
	}

	return h.validator.Validate(r.Context(), dst)
}

// bookmarkIDFromRequest parses the {id} path parameter.
func bookmarkIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidBookmarkID
	}
	return id, nil
}

// userIDFromContext returns the id the auth middleware put into ctx.
func userIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}
