package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/map-rotation-bot/internal/slack"
	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// HandleInteraction acks button clicks right away and lets the service render
// the next view in the background, since Slack gives up after three seconds.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.PostForm.Get("payload")), &callback); err != nil {
		log.WithError(err).Warn("failed to parse interaction payload")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)

	if callback.Type != slack.InteractionTypeBlockActions {
		log.WithField("type", callback.Type).Debug("ignoring interaction")
		return
	}

	for _, click := range clicksFrom(&callback) {
		h.async(func() {
			h.service.HandleClick(context.Background(), click)
		})
	}
}

func clicksFrom(callback *slack.InteractionCallback) []entity.Click {
	messageID := callback.Container.MessageTs
	if messageID == "" {
		messageID = callback.Message.Timestamp
	}
	channelID := callback.Channel.ID
	if channelID == "" {
		channelID = callback.Container.ChannelID
	}

	clicks := make([]entity.Click, 0, len(callback.ActionCallback.BlockActions))
	for _, action := range callback.ActionCallback.BlockActions {
		clicks = append(clicks, entity.Click{
			ControlID:     action.ActionID,
			MessageID:     messageID,
			UserID:        callback.User.ID,
			ChannelID:     channelID,
			DestinationID: callback.Team.ID,
			Disabled:      slackcmd.IsDisabledValue(action.Value),
		})
	}
	return clicks
}
