// Package lock implements the advisory, time-boxed ownership of interactive
// status messages. A lock is never released explicitly: it either expires
// after its TTL or is refreshed by its owner.
package lock

import (
	"math"
	"sync"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
)

// Context carries the identifiers needed to act on a resource once its lock expires
type Context struct {
	ChannelID     string
	DestinationID string
}

// Expiry is emitted once per natural lock expiration
type Expiry struct {
	ResourceID string
	Context
}

// Timer is the subset of *time.Timer the manager needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d
type AfterFunc func(d time.Duration, f func()) Timer

type entry struct {
	ownerID   string
	expiresAt time.Time
	ctx       Context
	timer     Timer
}

type Manager struct {
	mu       sync.Mutex
	locks    map[string]*entry
	onExpire func(Expiry)

	ttl       time.Duration
	now       func() time.Time
	afterFunc AfterFunc
	metrics   *obs.Metrics
}

type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func WithAfterFunc(f AfterFunc) Option {
	return func(m *Manager) {
		m.afterFunc = f
	}
}

func WithMetrics(metrics *obs.Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		locks: make(map[string]*entry),
		ttl:   domain.DefaultLockTTL,
		now:   time.Now,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetExpirationCallback registers the single process-wide expiry handler.
// It is meant to be called once during startup.
func (m *Manager) SetExpirationCallback(fn func(Expiry)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.onExpire != nil {
		return domain.ErrCallbackAlreadySet
	}
	m.onExpire = fn
	return nil
}

// Acquire takes or refreshes the lock on resourceID for ownerID. It fails only
// when another owner holds an unexpired lock.
func (m *Manager) Acquire(resourceID, ownerID string, lctx Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cur, ok := m.locks[resourceID]
	if ok && cur.ownerID != ownerID && cur.expiresAt.After(now) {
		m.metrics.IncLockAcquire("denied")
		return false
	}

	if ok {
		cur.timer.Stop()
	}

	e := &entry{
		ownerID:   ownerID,
		expiresAt: now.Add(m.ttl),
		ctx:       lctx,
	}
	e.timer = m.afterFunc(m.ttl, func() { m.expire(resourceID, e) })
	m.locks[resourceID] = e

	m.metrics.IncLockAcquire("granted")
	return true
}

// CanInteract reports whether ownerID may act on resourceID right now. Expired
// entries found along the way are dropped.
func (m *Manager) CanInteract(resourceID, ownerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.locks[resourceID]
	if !ok {
		return true
	}
	if !cur.expiresAt.After(m.now()) {
		cur.timer.Stop()
		delete(m.locks, resourceID)
		return true
	}
	return cur.ownerID == ownerID
}

// RemainingSeconds is the ceiling of the time left on the lock, 0 when unlocked
func (m *Manager) RemainingSeconds(resourceID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.locks[resourceID]
	if !ok {
		return 0
	}
	left := cur.expiresAt.Sub(m.now())
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

func (m *Manager) expire(resourceID string, e *entry) {
	m.mu.Lock()
	// the timer may fire after a refresh already replaced this entry
	if cur, ok := m.locks[resourceID]; !ok || cur != e {
		m.mu.Unlock()
		return
	}
	delete(m.locks, resourceID)
	cb := m.onExpire
	m.mu.Unlock()

	m.metrics.IncLockExpired()
	if cb != nil {
		cb(Expiry{ResourceID: resourceID, Context: e.ctx})
	}
}
