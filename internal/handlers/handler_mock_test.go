package handlers

import (
	"net/http"
	"testing"

	"github.com/diegoclair/map-rotation-bot/internal/handlers/test"
	"github.com/diegoclair/map-rotation-bot/internal/i18n"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	"github.com/diegoclair/map-rotation-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandlerTest(t *testing.T) (serviceMock *mocks.MockBotService, router http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock = mocks.NewMockBotService(ctrl)

	bundle, err := i18n.New("en")
	require.NoError(t, err)

	h := New(serviceMock, bundle, test.SigningSecret)
	h.async = func(f func()) { f() }

	router = NewRouter(h, obs.NewMetrics().Handler())
	return
}
