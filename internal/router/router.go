package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/learnaura/feedgate/internal/handler"
	"github.com/learnaura/feedgate/internal/middleware/metrics"
	"github.com/learnaura/feedgate/internal/setup"
)

func SetupRouter(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/healthz", handler.HealthzHandler)
	r.Handle("/metrics", promhttp.Handler())

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.NeedAuth())

		r.Get("/feed", deps.Handler.FeedGetHandler)

		r.Post("/feed/discussions", deps.Handler.DiscussionCreateHandler)
		r.Put("/feed/discussions/{id}", deps.Handler.DiscussionUpdateHandler)
		r.Delete("/feed/discussions/{id}", deps.Handler.DiscussionDeleteHandler)

		r.Post("/feed/replies", deps.Handler.ReplyCreateHandler)
		r.Put("/feed/replies/{id}", deps.Handler.ReplyUpdateHandler)
		r.Delete("/feed/replies/{id}", deps.Handler.ReplyDeleteHandler)
	})

	return r
}
