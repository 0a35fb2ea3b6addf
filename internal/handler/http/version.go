package http

import (
	"net/http"

	"github.com/MKhiriev/go-bookmarks/internal/app"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusNotFound, app.MsgNotFound)
}
