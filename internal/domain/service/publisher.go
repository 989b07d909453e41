package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/view"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	log "github.com/sirupsen/logrus"
)

type publisher struct {
	dm        contract.DataManager
	messenger contract.Messenger
	views     *viewBuilder
	clock     contract.Clock
	metrics   *obs.Metrics
}

func newPublisher(dm contract.DataManager, messenger contract.Messenger, views *viewBuilder,
	clock contract.Clock, metrics *obs.Metrics) *publisher {

	return &publisher{
		dm:        dm,
		messenger: messenger,
		views:     views,
		clock:     clock,
		metrics:   metrics,
	}
}

// publish puts the Home view in the destination channel and records the
// resulting message id
func (p *publisher) publish(ctx context.Context, d *entity.Destination) error {
	payload, err := p.views.build(ctx, d, view.Home())
	if err != nil {
		p.metrics.IncPublish("failed")
		return err
	}

	messageID, err := p.upsert(ctx, d, payload)
	if err != nil {
		p.metrics.IncPublish("failed")
		return err
	}

	err = p.dm.Destination().SetMessageState(ctx, d.ID, messageID, p.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to record message state: %w", err)
	}

	d.LastMessageID = messageID
	return nil
}

// upsert edits the remembered message in place, or sends and pins a new one
// when there is none or it was deleted
func (p *publisher) upsert(ctx context.Context, d *entity.Destination, payload *entity.Payload) (string, error) {
	logger := obs.WithFuncName().WithFields(log.Fields{
		"destination_id": d.ID,
		"channel_id":     d.ChannelID,
	})

	if d.HasMessage() {
		err := p.messenger.EditMessage(ctx, d.ChannelID, d.LastMessageID, payload)
		if err == nil {
			p.metrics.IncPublish("edited")
			return d.LastMessageID, nil
		}
		if !errors.Is(err, domain.ErrMessageNotFound) {
			return "", err
		}
		logger.WithField("message_id", d.LastMessageID).Info("status message is gone, sending a new one")
	}

	messageID, err := p.messenger.SendMessage(ctx, d.ChannelID, payload)
	if err != nil {
		return "", err
	}
	p.metrics.IncPublish("created")

	if err := p.messenger.PinMessage(ctx, d.ChannelID, messageID); err != nil {
		logger.WithField("message_id", messageID).WithError(err).Warn("failed to pin status message")
	}
	return messageID, nil
}
