package http

import (
	"net/http"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var request models.AuthRequest
	if err := h.decodeAndValidate(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignUp(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", token.UserID).Msg("user successfully signed up")
	utils.WriteJSON(w, models.AccessTokenResponse{AccessToken: token.SignedString}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var request models.AuthRequest
	if err := h.decodeAndValidate(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignIn(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", token.UserID).Msg("user successfully signed in")
	utils.WriteJSON(w, models.AccessTokenResponse{AccessToken: token.SignedString}, http.StatusOK)
}
