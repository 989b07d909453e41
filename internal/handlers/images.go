package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	slackcmd "github.com/diegoclair/map-rotation-bot/internal/slack"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// HandleImage serves the rendered map of the active hour. Slack fetches it
// once per message update; other hours are gone by then.
func (h *SlackHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	hour, _, ok := slackcmd.ParseImagePath(chi.URLParam(r, "file"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := h.service.MapImage(r.Context(), hour, locale)
	switch {
	case errors.Is(err, domain.ErrStaleHour), errors.Is(err, domain.ErrUnsupportedLocale):
		http.NotFound(w, r)
		return
	case err != nil:
		log.WithFields(log.Fields{"hour": hour, "locale": locale}).WithError(err).Error("failed to render map image")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(data)
}

func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
