package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/lock"
	"github.com/diegoclair/map-rotation-bot/internal/domain/rotation"
	"github.com/diegoclair/map-rotation-bot/internal/domain/view"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// cycles run slightly after the hour so the new rotation is active everywhere
	cycleGrace = 2 * time.Second

	revertTimeout = 30 * time.Second
)

type scheduler struct {
	dm          contract.DataManager
	messenger   contract.Messenger
	publisher   *publisher
	views       *viewBuilder
	clock       contract.Clock
	concurrency int

	// newTimer is swapped in tests
	newTimer func(d time.Duration) (<-chan time.Time, func() bool)

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}
}

func newScheduler(dm contract.DataManager, messenger contract.Messenger, pub *publisher, views *viewBuilder,
	clock contract.Clock, concurrency int) *scheduler {

	return &scheduler{
		dm:          dm,
		messenger:   messenger,
		publisher:   pub,
		views:       views,
		clock:       clock,
		concurrency: concurrency,
		newTimer: func(d time.Duration) (<-chan time.Time, func() bool) {
			t := time.NewTimer(d)
			return t.C, t.Stop
		},
	}
}

// Start runs a cycle right away and then one after every UTC hour boundary
func (s *scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	log.Info("Scheduler starting...")
	go s.mainLoop(ctx, s.stopChan, s.done)
}

// Stop ends the loop and waits for an in-flight cycle to finish
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	log.Info("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
	done := s.done
	s.mu.Unlock()

	<-done
}

func (s *scheduler) mainLoop(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		if err := s.RunCycle(ctx); err != nil {
			obs.WithFuncName().WithError(err).Error("rotation cycle failed")
		}

		now := s.clock.Now()
		next := s.nextRun(now)
		log.Debugf("Next rotation cycle at %s", next.Format("2006-01-02 15:04:05 UTC"))

		fire, stopTimer := s.newTimer(next.Sub(now))
		select {
		case <-fire:
		case <-stop:
			stopTimer()
			return
		case <-ctx.Done():
			stopTimer()
			return
		}
	}
}

func (s *scheduler) nextRun(now time.Time) time.Time {
	return rotation.NextRotationAt(now).Add(cycleGrace)
}

// RunCycle publishes the Home view to every destination. A failing destination
// is logged and skipped; only listing the destinations can fail the cycle.
func (s *scheduler) RunCycle(ctx context.Context) error {
	logger := obs.WithFuncName().WithField("cycle_id", uuid.NewString())

	destinations, err := s.dm.Destination().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list destinations: %w", err)
	}

	var failed atomic.Int32
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for _, d := range destinations {
		g.Go(func() error {
			if err := s.publisher.publish(ctx, d); err != nil {
				failed.Add(1)
				logger.WithFields(log.Fields{
					"destination_id": d.ID,
					"channel_id":     d.ChannelID,
					"message_id":     d.LastMessageID,
				}).WithError(err).Error("failed to publish rotation")
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.WithFields(log.Fields{
		"destinations": len(destinations),
		"failed":       failed.Load(),
	}).Info("rotation cycle finished")
	return nil
}

// PublishDestination publishes the Home view to a single destination
func (s *scheduler) PublishDestination(ctx context.Context, destinationID string) error {
	d, err := s.dm.Destination().GetByID(ctx, destinationID)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrDestinationNotFound
	}
	return s.publisher.publish(ctx, d)
}

// revertExpired puts a message abandoned in a drill-down back on Home once
// its interaction lock expires
func (s *scheduler) revertExpired(e lock.Expiry) {
	ctx, cancel := context.WithTimeout(context.Background(), revertTimeout)
	defer cancel()

	logger := obs.WithFuncName().WithFields(log.Fields{
		"destination_id": e.DestinationID,
		"channel_id":     e.ChannelID,
		"message_id":     e.ResourceID,
	})

	current, err := s.messenger.FetchMessage(ctx, e.ChannelID, e.ResourceID)
	if errors.Is(err, domain.ErrMessageNotFound) {
		logger.Debug("expired message is gone, nothing to revert")
		return
	}
	if err != nil {
		logger.WithError(err).Error("failed to fetch expired message")
		return
	}
	if current.HomeDisabled(view.ControlHome) {
		return
	}

	d, err := s.dm.Destination().GetByID(ctx, e.DestinationID)
	if err != nil {
		logger.WithError(err).Error("failed to load destination")
		return
	}
	if d == nil {
		logger.Debug("destination was removed, nothing to revert")
		return
	}

	home, err := s.views.build(ctx, d, view.Home())
	if err != nil {
		logger.WithError(err).Error("failed to build home view")
		return
	}
	if err := s.messenger.EditMessage(ctx, e.ChannelID, e.ResourceID, home); err != nil {
		logger.WithError(err).Error("failed to revert message to home")
		return
	}
	logger.Debug("reverted expired message to home")
}
