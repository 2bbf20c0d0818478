package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nikhilbhutani/aphasiarelay/internal/aiclient"
	"github.com/nikhilbhutani/aphasiarelay/internal/api/handlers"
	"github.com/nikhilbhutani/aphasiarelay/internal/api/middleware"
	"github.com/nikhilbhutani/aphasiarelay/internal/config"
	"github.com/nikhilbhutani/aphasiarelay/internal/tempstore"
)

type Router struct {
	mux    *chi.Mux
	cfg    *config.Config
	client *aiclient.Client
	store  *tempstore.Store
}

// NewRouter wires the relay routes. client is nil when no credential was
// configured.
func NewRouter(cfg *config.Config, client *aiclient.Client, store *tempstore.Store) *Router {
	return &Router{
		mux:    chi.NewRouter(),
		cfg:    cfg,
		client: client,
		store:  store,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.AllowedOrigins))

	health := handlers.NewHealthHandler(rt.client)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	transcribeH := handlers.NewTranscribeHandler(rt.client, rt.store, rt.cfg.Upload.MaxMemory)
	suggestH := handlers.NewSuggestHandler(rt.client)
	r.Route("/api", func(r chi.Router) {
		r.Post("/transcribe", transcribeH.Transcribe)
		r.Post("/suggest", suggestH.Suggest)
	})

	return r
}
