package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)

	router.Get("/version", h.getServerVersion)

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.signUp)
		r.Post("/signin", h.signIn)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getMe)
		r.Patch("/users", h.editUser)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", h.getBookmarks)
			r.Post("/", h.createBookmark)
			r.Get("/{id}", h.getBookmarkByID)
			r.Patch("/{id}", h.editBookmarkByID)
			r.Delete("/{id}", h.deleteBookmarkByID)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
