package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Init wires the router: recovery, tracing, access logging, response
// compression, CORS and optional bearer auth around the page, form,
// document and completion routes.
func (h *Handler) Init(allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))
	router.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}).Handler)

	router.Get("/", h.demoPage)
	router.Get("/api/version", h.getServerVersion)
	router.Post("/api/form", h.submitForm)

	// document passthrough, subject attribution via optional bearer auth
	router.Route("/api/db", func(r chi.Router) {
		r.Use(h.withOptionalAuth)

		r.Get("/{collection}", h.listCollection)
		r.Post("/{collection}", h.createDocument)
		r.Post("/{collection}/query", h.queryCollection)

		r.Get("/doc/*", h.getDocument)
		r.Patch("/doc/*", h.updateDocument)
		r.Delete("/doc/*", h.deleteDocument)
	})

	router.Post("/api/ai/complete", h.complete)

	return router
}
