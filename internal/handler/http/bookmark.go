package http

import (
	"net/http"

	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

func (h *Handler) getBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmarks, err := h.services.BookmarkService.GetBookmarks(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookmarks, http.StatusOK)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CreateBookmarkRequest
	if err = h.decodeAndValidate(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	bookmark, err := h.services.BookmarkService.CreateBookmark(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusCreated)
}

// getBookmarkByID answers 404 both for a missing bookmark and for one owned
// by another user.
func (h *Handler) getBookmarkByID(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmark, err := h.services.BookmarkService.GetBookmarkByID(r.Context(), userID, bookmarkID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if bookmark == nil {
		writeError(w, r, service.ErrBookmarkNotFound)
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusOK)
}

func (h *Handler) editBookmarkByID(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.EditBookmarkRequest
	if err = h.decodeAndValidate(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	bookmark, err := h.services.BookmarkService.EditBookmarkByID(r.Context(), userID, bookmarkID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusOK)
}

func (h *Handler) deleteBookmarkByID(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BookmarkService.DeleteBookmarkByID(r.Context(), userID, bookmarkID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
