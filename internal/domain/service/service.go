package service

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/lock"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	log "github.com/sirupsen/logrus"
)

const backgroundPublishTimeout = time.Minute

// botService implements contract.BotService
type botService struct {
	dm        contract.DataManager
	messenger contract.Messenger
	localizer contract.Localizer
	locks     *lock.Manager
	views     *viewBuilder
	scheduler *scheduler

	// async runs follow-up work off the request path; tests make it synchronous
	async   func(func())
	pending sync.WaitGroup
}

func newBotService(dm contract.DataManager, messenger contract.Messenger, localizer contract.Localizer,
	locks *lock.Manager, views *viewBuilder, sched *scheduler) *botService {

	s := &botService{
		dm:        dm,
		messenger: messenger,
		localizer: localizer,
		locks:     locks,
		views:     views,
		scheduler: sched,
	}
	s.async = s.track
	return s
}

// track runs f in the background and counts it until it returns
func (s *botService) track(f func()) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		f()
	}()
}

// republish pushes a fresh Home view after a settings change
func (s *botService) republish(destinationID string) {
	s.async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundPublishTimeout)
		defer cancel()

		if err := s.scheduler.PublishDestination(ctx, destinationID); err != nil {
			obs.WithFuncName().WithField("destination_id", destinationID).WithError(err).
				Error("failed to publish after settings change")
			return
		}
		log.WithField("destination_id", destinationID).Debug("published after settings change")
	})
}

var _ contract.BotService = (*botService)(nil)
