package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/lock"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
)

const defaultFanoutConcurrency = 4

type Instance struct {
	Bot       *botService
	Scheduler *scheduler
	Locks     *lock.Manager
}

type options struct {
	clock         contract.Clock
	metrics       *obs.Metrics
	lockTTL       time.Duration
	concurrency   int
	imagesEnabled bool
	lockOpts      []lock.Option
}

type Option func(*options)

func WithClock(clock contract.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func WithMetrics(metrics *obs.Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

func WithLockTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.lockTTL = ttl
	}
}

// WithFanoutConcurrency bounds the destinations published at once in a cycle
func WithFanoutConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithImages attaches the rendered map to every published view
func WithImages(enabled bool) Option {
	return func(o *options) {
		o.imagesEnabled = enabled
	}
}

// WithLockOptions passes extra options to the interaction lock manager
func WithLockOptions(opts ...lock.Option) Option {
	return func(o *options) {
		o.lockOpts = append(o.lockOpts, opts...)
	}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func NewInstance(dm contract.DataManager, messenger contract.Messenger, renderer contract.Renderer,
	localizer contract.Localizer, opts ...Option) (*Instance, error) {

	o := options{
		clock:       systemClock{},
		lockTTL:     domain.DefaultLockTTL,
		concurrency: defaultFanoutConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}

	locks := lock.NewManager(append([]lock.Option{
		lock.WithTTL(o.lockTTL),
		lock.WithClock(o.clock.Now),
		lock.WithMetrics(o.metrics),
	}, o.lockOpts...)...)

	views := newViewBuilder(localizer, renderer, o.clock, o.imagesEnabled, o.metrics)
	pub := newPublisher(dm, messenger, views, o.clock, o.metrics)
	sched := newScheduler(dm, messenger, pub, views, o.clock, o.concurrency)

	if err := locks.SetExpirationCallback(sched.revertExpired); err != nil {
		return nil, fmt.Errorf("failed to register lock expiry handler: %w", err)
	}

	return &Instance{
		Bot:       newBotService(dm, messenger, localizer, locks, views, sched),
		Scheduler: sched,
		Locks:     locks,
	}, nil
}

// Wait blocks until background republishes started by settings changes are done
func (i *Instance) Wait() {
	i.Bot.pending.Wait()
}
