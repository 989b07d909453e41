package service

import (
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/lock"
	"github.com/diegoclair/map-rotation-bot/internal/i18n"
	"github.com/diegoclair/map-rotation-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 02:41 UTC, the Dam has its Night major event
var testNow = time.Date(2025, 3, 10, 2, 41, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockDestinationRepo *mocks.MockDestinationRepo
	mockMessenger       *mocks.MockMessenger
	mockRenderer        *mocks.MockRenderer
	mockClock           *mocks.MockClock
	timers              *manualTimers
}

// manualTimers holds lock expiry timers until the test fires them
type manualTimers struct {
	mu      sync.Mutex
	pending []*manualTimer
}

type manualTimer struct {
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (m *manualTimers) afterFunc(_ time.Duration, f func()) lock.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{f: f}
	m.pending = append(m.pending, t)
	return t
}

// fireAll runs every live timer, as if the TTL elapsed
func (m *manualTimers) fireAll() {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, t := range pending {
		if !t.stopped {
			t.stopped = true
			t.f()
		}
	}
}

func newServiceTestMock(t *testing.T, opts ...Option) (m allMocks, inst *Instance) {
	t.Helper()

	ctrl := gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	destinationRepo := mocks.NewMockDestinationRepo(ctrl)
	dm.EXPECT().Destination().Return(destinationRepo).AnyTimes()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockDestinationRepo: destinationRepo,
		mockMessenger:       mocks.NewMockMessenger(ctrl),
		mockRenderer:        mocks.NewMockRenderer(ctrl),
		mockClock:           clock,
		timers:              &manualTimers{},
	}

	bundle, err := i18n.New("en")
	require.NoError(t, err)

	opts = append([]Option{
		WithClock(clock),
		WithLockOptions(lock.WithAfterFunc(m.timers.afterFunc)),
	}, opts...)

	inst, err = NewInstance(dm, m.mockMessenger, m.mockRenderer, bundle, opts...)
	require.NoError(t, err)

	inst.Bot.async = func(f func()) { f() }
	return
}

type payloadMatcher struct {
	desc string
	fn   func(*entity.Payload) bool
}

func payloadThat(desc string, fn func(*entity.Payload) bool) gomock.Matcher {
	return payloadMatcher{desc: desc, fn: fn}
}

func (m payloadMatcher) Matches(x any) bool {
	p, ok := x.(*entity.Payload)
	return ok && p != nil && m.fn(p)
}

func (m payloadMatcher) String() string {
	return "payload with " + m.desc
}

func testTranslator(t *testing.T) contract.Translator {
	t.Helper()
	bundle, err := i18n.New("en")
	require.NoError(t, err)
	return bundle.For("en")
}
