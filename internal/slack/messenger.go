package slack

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// Slack error codes that mean the status message is gone
var missingMessageCodes = map[string]bool{
	"message_not_found":   true,
	"cant_update_message": true,
}

// Messenger implements contract.Messenger on top of the Slack Web API
type Messenger struct {
	client contract.SlackClient
	codec  *Codec
}

func NewMessenger(client contract.SlackClient, codec *Codec) *Messenger {
	return &Messenger{client: client, codec: codec}
}

func (m *Messenger) SendMessage(ctx context.Context, channelID string, payload *entity.Payload) (string, error) {
	_, ts, err := m.client.PostMessageContext(ctx, channelID, m.codec.Options(payload)...)
	if err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}
	return ts, nil
}

func (m *Messenger) EditMessage(ctx context.Context, channelID, messageID string, payload *entity.Payload) error {
	_, _, _, err := m.client.UpdateMessageContext(ctx, channelID, messageID, m.codec.Options(payload)...)
	if err != nil {
		return translateError("failed to update message", err)
	}
	return nil
}

func (m *Messenger) PinMessage(ctx context.Context, channelID, messageID string) error {
	err := m.client.AddPinContext(ctx, channelID, slack.NewRefToMessage(channelID, messageID))
	if err != nil && slackErrorCode(err) != "already_pinned" {
		return fmt.Errorf("failed to pin message: %w", err)
	}
	return nil
}

func (m *Messenger) FetchMessage(ctx context.Context, channelID, messageID string) (*entity.Payload, error) {
	resp, err := m.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Latest:    messageID,
		Oldest:    messageID,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return nil, translateError("failed to fetch message", err)
	}
	if len(resp.Messages) == 0 || resp.Messages[0].Timestamp != messageID {
		return nil, domain.ErrMessageNotFound
	}

	return m.codec.Decode(resp.Messages[0])
}

func (m *Messenger) SendEphemeral(ctx context.Context, channelID, userID, text string) error {
	_, err := m.client.PostEphemeralContext(ctx, channelID, userID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post ephemeral message: %w", err)
	}
	return nil
}

func translateError(msg string, err error) error {
	if missingMessageCodes[slackErrorCode(err)] {
		return fmt.Errorf("%s: %w", msg, domain.ErrMessageNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func slackErrorCode(err error) string {
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return slackErr.Err
	}
	return ""
}
