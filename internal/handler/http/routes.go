package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const compressionLevel = 5

// Init builds the router. All routes live under /api/v1.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
			ExposedHeaders:   []string{"Authorization", traceIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.Compress(compressionLevel, "application/json", "text/plain"),
		withGZipRequest,
	)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/recipes", func(r chi.Router) {
			// public reads
			r.Get("/", h.listRecipes)
			r.Get("/{recipeID}", h.getRecipe)

			// owner operations
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createRecipe)
				r.Put("/{recipeID}", h.updateRecipe)
				r.Delete("/{recipeID}", h.deleteRecipe)
				r.Put("/{recipeID}/photo", h.uploadRecipePhoto)
			})
		})
	})

	return router
}
