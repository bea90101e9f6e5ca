package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultRequestTimeout = 30 * time.Second

func (h *Handler) Init() *chi.Mux {
	requestTimeout := h.cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	router.Use(middleware.Timeout(requestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/status", h.status)
		r.Post("/api/users", h.register)
		r.Post("/api/login", h.login)
	})

	// fasting sessions of the token owner
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/logs", h.createSession)
		r.Get("/api/logs", h.listSessions)
		r.Delete("/api/logs", h.deleteOpenSessions)
		r.Get("/api/open-logs", h.listOpenSessions)
		r.Put("/api/logs/edit", h.editSessions)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
