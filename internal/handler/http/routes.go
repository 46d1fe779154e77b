package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// domain allow-list
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/domains.txt", h.getDomainList)
		r.Get("/api/check", h.checkPage)
	})

	router.Get("/api/settings/{key}", h.getSetting)
	router.Put("/api/settings/{key}", h.putSetting)
	router.Delete("/api/settings/{key}", h.deleteSetting)

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
