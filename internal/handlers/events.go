package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack/slackevents"
)

func (h *SlackHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := slackevents.ParseEvent(body, slackevents.OptionNoVerifyToken())
	if err != nil {
		log.WithError(err).Warn("failed to parse slack event")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		if _, ok := event.InnerEvent.Data.(*slackevents.AppUninstalledEvent); ok {
			if err := h.service.RemoveDestination(r.Context(), event.TeamID); err != nil {
				log.WithField("destination_id", event.TeamID).WithError(err).Error("failed to remove uninstalled destination")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			log.WithField("destination_id", event.TeamID).Info("app uninstalled, destination removed")
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}
