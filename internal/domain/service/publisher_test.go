package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/view"
	"github.com/diegoclair/map-rotation-bot/internal/obs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_publisher_publish(t *testing.T) {
	isHome := payloadThat("home view", func(p *entity.Payload) bool {
		return p.HomeDisabled(view.ControlHome)
	})

	tests := []struct {
		name          string
		destination   *entity.Destination
		buildMock     func(m allMocks, d *entity.Destination)
		wantMessageID string
		wantResult    string
		wantErr       bool
	}{
		{
			name:        "Should send and pin when no message exists",
			destination: &entity.Destination{ID: "T1", ChannelID: "C1"},
			buildMock: func(m allMocks, d *entity.Destination) {
				gomock.InOrder(
					m.mockMessenger.EXPECT().SendMessage(gomock.Any(), "C1", isHome).Return("1.1", nil),
					m.mockMessenger.EXPECT().PinMessage(gomock.Any(), "C1", "1.1").Return(nil),
					m.mockDestinationRepo.EXPECT().SetMessageState(gomock.Any(), "T1", "1.1", testNow).Return(nil),
				)
			},
			wantMessageID: "1.1",
			wantResult:    "created",
		},
		{
			name:        "Should edit the remembered message in place",
			destination: &entity.Destination{ID: "T1", ChannelID: "C1", LastMessageID: "1.0"},
			buildMock: func(m allMocks, d *entity.Destination) {
				m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.0", isHome).Return(nil)
				m.mockDestinationRepo.EXPECT().SetMessageState(gomock.Any(), "T1", "1.0", testNow).Return(nil)
			},
			wantMessageID: "1.0",
			wantResult:    "edited",
		},
		{
			name:        "Should replace a deleted message",
			destination: &entity.Destination{ID: "T1", ChannelID: "C1", LastMessageID: "1.0"},
			buildMock: func(m allMocks, d *entity.Destination) {
				gomock.InOrder(
					m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.0", gomock.Any()).
						Return(fmt.Errorf("failed to update message: %w", domain.ErrMessageNotFound)),
					m.mockMessenger.EXPECT().SendMessage(gomock.Any(), "C1", isHome).Return("1.2", nil),
					m.mockMessenger.EXPECT().PinMessage(gomock.Any(), "C1", "1.2").Return(nil),
					m.mockDestinationRepo.EXPECT().SetMessageState(gomock.Any(), "T1", "1.2", testNow).Return(nil),
				)
			},
			wantMessageID: "1.2",
			wantResult:    "created",
		},
		{
			name:        "Should keep the new message when pinning fails",
			destination: &entity.Destination{ID: "T1", ChannelID: "C1"},
			buildMock: func(m allMocks, d *entity.Destination) {
				m.mockMessenger.EXPECT().SendMessage(gomock.Any(), "C1", gomock.Any()).Return("1.1", nil)
				m.mockMessenger.EXPECT().PinMessage(gomock.Any(), "C1", "1.1").Return(errors.New("missing_scope"))
				m.mockDestinationRepo.EXPECT().SetMessageState(gomock.Any(), "T1", "1.1", testNow).Return(nil)
			},
			wantMessageID: "1.1",
			wantResult:    "created",
		},
		{
			name:        "Should fail on other edit errors without sending",
			destination: &entity.Destination{ID: "T1", ChannelID: "C1", LastMessageID: "1.0"},
			buildMock: func(m allMocks, d *entity.Destination) {
				m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.0", gomock.Any()).
					Return(errors.New("not_in_channel"))
			},
			wantMessageID: "1.0",
			wantResult:    "failed",
			wantErr:       true,
		},
		{
			name:        "Should fail when sending fails",
			destination: &entity.Destination{ID: "T1", ChannelID: "C1"},
			buildMock: func(m allMocks, d *entity.Destination) {
				m.mockMessenger.EXPECT().SendMessage(gomock.Any(), "C1", gomock.Any()).Return("", errors.New("channel_not_found"))
			},
			wantResult: "failed",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := obs.NewMetrics()
			m, inst := newServiceTestMock(t, WithMetrics(metrics))
			tt.buildMock(m, tt.destination)

			err := inst.Scheduler.publisher.publish(context.Background(), tt.destination)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantMessageID, tt.destination.LastMessageID)
			assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PublishTotal.WithLabelValues(tt.wantResult)))
		})
	}
}

func Test_publisher_publishWithImage(t *testing.T) {
	m, inst := newServiceTestMock(t, WithImages(true))
	d := &entity.Destination{ID: "T1", ChannelID: "C1", LastMessageID: "1.0", Locale: "es"}

	m.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in contract.RenderInput) ([]byte, error) {
			assert.Equal(t, 2, in.Current.Hour)
			assert.Len(t, in.Forecast, domain.HomeForecastHours)
			assert.Equal(t, "es", in.Translator.Locale())
			return []byte("png"), nil
		}).Times(1)
	m.mockMessenger.EXPECT().EditMessage(gomock.Any(), "C1", "1.0", payloadThat("map image of 02h in es", func(p *entity.Payload) bool {
		return p.Image != nil && p.Image.Hour == 2 && p.Image.Locale == "es"
	})).Return(nil).Times(2)
	m.mockDestinationRepo.EXPECT().SetMessageState(gomock.Any(), "T1", "1.0", testNow).Return(nil).Times(2)

	require.NoError(t, inst.Scheduler.publisher.publish(context.Background(), d))
	// the second publish in the same hour reuses the cached render
	require.NoError(t, inst.Scheduler.publisher.publish(context.Background(), d))
}

func Test_publisher_publishRenderFailure(t *testing.T) {
	m, inst := newServiceTestMock(t, WithImages(true))

	m.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))

	err := inst.Scheduler.publisher.publish(context.Background(), &entity.Destination{ID: "T1", ChannelID: "C1"})
	assert.ErrorContains(t, err, "font missing")
}
