package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/rotation"
	"github.com/diegoclair/map-rotation-bot/internal/domain/view"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func click(userID, controlID string) entity.Click {
	return entity.Click{
		ControlID:     controlID,
		MessageID:     "1.1",
		UserID:        userID,
		ChannelID:     "C1",
		DestinationID: "T1",
	}
}

func Test_botService_HandleClick(t *testing.T) {
	damControl := view.SelectLocation{Location: rotation.Dam}.ControlID()
	atDam := payloadThat("dam drill-down", func(p *entity.Payload) bool {
		b, ok := p.FindButton(damControl)
		return ok && b.Disabled && !p.HomeDisabled(view.ControlHome)
	})
	destination := &entity.Destination{ID: "T1", ChannelID: "C1"}

	tests := []struct {
		name      string
		clicks    []entity.Click
		buildMock func(m allMocks)
	}{
		{
			name:   "Should move the message to the selected location",
			clicks: []entity.Click{click("U1", damControl)},
			buildMock: func(m allMocks) {
				m.mockDestinationRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(destination, nil)
				m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.1", atDam).Return(nil)
			},
		},
		{
			name: "Should ignore clicks on the current position",
			clicks: []entity.Click{{
				ControlID: view.ControlHome, MessageID: "1.1", UserID: "U1", ChannelID: "C1", DestinationID: "T1", Disabled: true,
			}},
			buildMock: func(m allMocks) {},
		},
		{
			name:      "Should ignore unknown controls",
			clicks:    []entity.Click{click("U1", "view_map_moon")},
			buildMock: func(m allMocks) {},
		},
		{
			name:   "Should let the owner keep navigating",
			clicks: []entity.Click{click("U1", damControl), click("U1", view.SwitchMode{Mode: view.ModeMajor}.ControlID())},
			buildMock: func(m allMocks) {
				m.mockDestinationRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(destination, nil).Times(2)
				m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.1", gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name:   "Should reject another user while the lock is held",
			clicks: []entity.Click{click("U1", damControl), click("U2", view.ControlHome)},
			buildMock: func(m allMocks) {
				m.mockDestinationRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(destination, nil).Times(2)
				m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.1", atDam).Return(nil)
				m.mockMessenger.EXPECT().SendEphemeral(gomock.Any(), "C1", "U2",
					":no_entry_sign: This menu is currently being used by another user. Please wait 15 seconds.").Return(nil)
			},
		},
		{
			name:   "Should render with defaults when the destination cannot be loaded",
			clicks: []entity.Click{click("U1", damControl)},
			buildMock: func(m allMocks) {
				m.mockDestinationRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(nil, errors.New("database is locked"))
				m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.1", atDam).Return(nil)
			},
		},
		{
			name:   "Should swallow edit failures",
			clicks: []entity.Click{click("U1", damControl)},
			buildMock: func(m allMocks) {
				m.mockDestinationRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(destination, nil)
				m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.1", atDam).Return(errors.New("rate_limited"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, inst := newServiceTestMock(t)
			tt.buildMock(m)

			for _, c := range tt.clicks {
				inst.Bot.HandleClick(context.Background(), c)
			}
		})
	}
}

func Test_botService_HandleClickLocalizedNotice(t *testing.T) {
	metrics := obs.NewMetrics()
	m, inst := newServiceTestMock(t, WithMetrics(metrics))
	destination := &entity.Destination{ID: "T1", ChannelID: "C1", Locale: "es"}

	m.mockDestinationRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(destination, nil).Times(2)
	m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.1", gomock.Any()).Return(nil)
	m.mockMessenger.EXPECT().SendEphemeral(gomock.Any(), "C1", "U2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, text string) error {
			assert.Contains(t, text, "15")
			assert.NotContains(t, text, "another user")
			return nil
		})

	inst.Bot.HandleClick(context.Background(), click("U1", view.SwitchMode{Mode: view.ModeMinor}.ControlID()))
	inst.Bot.HandleClick(context.Background(), click("U2", view.ControlHome))

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.LockAcquireTotal.WithLabelValues("granted")))
}
