package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the Slack endpoints behind signature verification next to
// the public image, health and metrics routes
func NewRouter(h *SlackHandler, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HandleHealth)
	r.Get("/images/{locale}/{file}", h.HandleImage)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(verifySlackSignature(h.signingSecret))
		r.Post("/slack/commands", h.HandleSlashCommand)
		r.Post("/slack/interactions", h.HandleInteraction)
		r.Post("/slack/events", h.HandleEvent)
	})

	return r
}
