package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/handlers/test"
	"github.com/diegoclair/map-rotation-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	configured := &entity.Destination{ID: "T1", ChannelID: "C1", Name: "general"}
	updatedAt := time.Date(2025, 3, 10, 2, 0, 2, 0, time.UTC)

	tests := []struct {
		name       string
		text       string
		buildMocks func(m *mocks.MockBotService)
		wantText   string
	}{
		{
			name: "Should configure the channel",
			text: "set-channel",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(nil, domain.ErrDestinationNotFound)
				m.EXPECT().ConfigureChannel(gomock.Any(), "T1", "C1", "general").Return(configured, nil)
			},
			wantText: ":white_check_mark: Map rotation updates will be posted in <#C1>.",
		},
		{
			name: "Should report a failed configuration",
			text: "set-channel",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(nil, domain.ErrDestinationNotFound)
				m.EXPECT().ConfigureChannel(gomock.Any(), "T1", "C1", "general").Return(nil, fmt.Errorf("boom"))
			},
			wantText: ":x: Something went wrong, please try again later.",
		},
		{
			name: "Should enable the mobile layout",
			text: "settings mobile on",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(configured, nil)
				m.EXPECT().SetMobileFriendly(gomock.Any(), "T1", true).
					Return(&entity.Destination{ID: "T1", ChannelID: "C1", MobileFriendly: true}, nil)
			},
			wantText: ":iphone: Mobile friendly layout enabled.",
		},
		{
			name: "Should disable the mobile layout",
			text: "settings mobile off",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(configured, nil)
				m.EXPECT().SetMobileFriendly(gomock.Any(), "T1", false).Return(configured, nil)
			},
			wantText: ":desktop_computer: Desktop layout enabled.",
		},
		{
			name: "Should ask to configure a channel first",
			text: "settings mobile on",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(nil, domain.ErrDestinationNotFound)
				m.EXPECT().SetMobileFriendly(gomock.Any(), "T1", true).
					Return(nil, fmt.Errorf("failed to set mobile friendly: %w", domain.ErrDestinationNotFound))
			},
			wantText: ":warning: No channel configured yet. Run `/maprotation set-channel` first.",
		},
		{
			name: "Should answer in the new language",
			text: "settings locale es-ES",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(configured, nil)
				m.EXPECT().SetLocale(gomock.Any(), "T1", "es-ES").
					Return(&entity.Destination{ID: "T1", ChannelID: "C1", Locale: "es"}, nil)
			},
			wantText: ":globe_with_meridians: Idioma cambiado a `es`.",
		},
		{
			name: "Should list the available languages",
			text: "settings locale fr",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(configured, nil)
				m.EXPECT().SetLocale(gomock.Any(), "T1", "fr").
					Return(nil, fmt.Errorf("%w: fr", domain.ErrUnsupportedLocale))
			},
			wantText: ":x: Unsupported language `fr`. Available: en, es.",
		},
		{
			name: "Should show the status",
			text: "status",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(&entity.Destination{
					ID: "T1", ChannelID: "C1", MobileFriendly: true, LastUpdatedAt: &updatedAt,
				}, nil)
			},
			wantText: "Channel: <#C1>\nMobile friendly: on\nLanguage: `en`\n" +
				"Last update: <!date^1741572002^{date_short_pretty} {time}|2025-03-10 02:00 UTC>",
		},
		{
			name: "Should show the status in the workspace language",
			text: "status",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").
					Return(&entity.Destination{ID: "T1", ChannelID: "C1", Locale: "es"}, nil)
			},
			wantText: "Canal: <#C1>\nDiseño móvil: desactivado\nIdioma: `es`\nÚltima actualización: nunca",
		},
		{
			name: "Should report a missing configuration on status",
			text: "status",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(nil, domain.ErrDestinationNotFound)
			},
			wantText: ":warning: No channel configured yet. Run `/maprotation set-channel` first.",
		},
		{
			name: "Should answer ping",
			text: "ping",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(nil, domain.ErrDestinationNotFound)
			},
			wantText: ":ping_pong: Pong!",
		},
		{
			name: "Should remove the destination",
			text: "remove",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(configured, nil)
				m.EXPECT().RemoveDestination(gomock.Any(), "T1").Return(nil)
			},
			wantText: ":wave: This workspace will no longer receive map rotation updates.",
		},
		{
			name: "Should reject unknown commands",
			text: "dance",
			buildMocks: func(m *mocks.MockBotService) {
				m.EXPECT().GetDestination(gomock.Any(), "T1").Return(nil, domain.ErrDestinationNotFound)
			},
			wantText: ":question: Unknown command. Try `/maprotation help`.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock, router := newHandlerTest(t)
			tt.buildMocks(serviceMock)

			req := test.CreateSlashCommandRequest(t, tt.text, "C1", "general", "U1", "T1")
			resp := test.CreateTestRecorder()
			router.ServeHTTP(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)

			var response slack.Msg
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
			assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
			assert.Equal(t, tt.wantText, response.Text)
		})
	}
}

func TestSlackHandler_HandleSlashCommandHelp(t *testing.T) {
	for _, text := range []string{"", "help", "settings mobile maybe"} {
		serviceMock, router := newHandlerTest(t)
		serviceMock.EXPECT().GetDestination(gomock.Any(), "T1").Return(nil, domain.ErrDestinationNotFound)

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, test.CreateSlashCommandRequest(t, text, "C1", "general", "U1", "T1"))

		var response slack.Msg
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
		assert.Contains(t, response.Text, "/maprotation set-channel", text)
		assert.Contains(t, response.Text, "(en, es)", text)
	}
}

func TestSlackHandler_RejectsUnsignedRequests(t *testing.T) {
	_, router := newHandlerTest(t)

	req := test.CreateSlashCommandRequest(t, "remove", "C1", "general", "U1", "T1")
	req.Header.Set("X-Slack-Signature", "v0=deadbeef")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	req = test.CreateSlackRequest(t, "/slack/events", "application/json", `{"type":"url_verification"}`, "wrong-secret")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
