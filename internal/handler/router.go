// internal/handler/router.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Nacorpio/Narser/internal/config"
	"github.com/Nacorpio/Narser/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// requestOverhead leaves room for the JSON envelope around the source
const requestOverhead = 4 << 10

// NewRouter mounts the grammar endpoints
func NewRouter(cfg *config.Config, logger *slog.Logger) http.Handler {
	grammarHandler := NewGrammarHandler(cfg)

	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))
		r.Use(middleware.MaxBody(2*cfg.Parser.MaxSourceBytes + requestOverhead))

		r.Post("/parse", grammarHandler.ParseHandler)
		r.Post("/tokens", grammarHandler.TokensHandler)
		r.Post("/rule", grammarHandler.RuleHandler)
	})

	return r
}
