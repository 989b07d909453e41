package service

import (
	"context"
	"strconv"

	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/lock"
	"github.com/diegoclair/map-rotation-bot/internal/domain/view"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	log "github.com/sirupsen/logrus"
)

// HandleClick moves a status message to the view named by the clicked control.
// Only the current lock holder may navigate; everyone else gets an ephemeral
// notice and the message stays untouched.
func (s *botService) HandleClick(ctx context.Context, click entity.Click) {
	logger := obs.WithFuncName().WithFields(log.Fields{
		"control_id":     click.ControlID,
		"message_id":     click.MessageID,
		"user_id":        click.UserID,
		"channel_id":     click.ChannelID,
		"destination_id": click.DestinationID,
	})

	if click.Disabled {
		logger.Debug("ignoring click on the current position")
		return
	}

	action, err := view.ParseControl(click.ControlID)
	if err != nil {
		logger.WithError(err).Warn("ignoring click")
		return
	}

	d, err := s.dm.Destination().GetByID(ctx, click.DestinationID)
	if err != nil {
		logger.WithError(err).Warn("failed to load destination, rendering with defaults")
	}
	if d == nil {
		d = &entity.Destination{ID: click.DestinationID, ChannelID: click.ChannelID}
	}

	lctx := lock.Context{ChannelID: click.ChannelID, DestinationID: click.DestinationID}
	if !s.locks.CanInteract(click.MessageID, click.UserID) || !s.locks.Acquire(click.MessageID, click.UserID, lctx) {
		s.rejectBusy(ctx, click, d, logger)
		return
	}

	payload, err := s.views.build(ctx, d, view.Transition(action))
	if err != nil {
		logger.WithError(err).Error("failed to build view")
		return
	}

	if err := s.messenger.EditMessage(ctx, click.ChannelID, click.MessageID, payload); err != nil {
		logger.WithError(err).Error("failed to update message")
	}
}

func (s *botService) rejectBusy(ctx context.Context, click entity.Click, d *entity.Destination, logger *log.Entry) {
	text := s.views.translator(d).T("map_rotation.lock_busy", map[string]string{
		"seconds": strconv.Itoa(s.locks.RemainingSeconds(click.MessageID)),
	})

	if err := s.messenger.SendEphemeral(ctx, click.ChannelID, click.UserID, text); err != nil {
		logger.WithError(err).Warn("failed to send lock notice")
	}
}
