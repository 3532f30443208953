package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const configScriptPath = "/config.js"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	// CORS goes first so even recovered panics carry the headers
	router.Use(withCORS)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.HandleFunc(configScriptPath, h.getConfigScript)

	// everything else is plain static content
	router.Handle("/*", h.static)

	return router
}
