package http

import (
	"net/http"

	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetMe(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.EditUserRequest
	if err = h.decodeAndValidate(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.EditUser(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
