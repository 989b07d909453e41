package contract

//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the subset of *slack.Client the messenger uses.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UpdateMessageContext(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
	AddPinContext(ctx context.Context, channel string, item slack.ItemRef) error
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	PostEphemeralContext(ctx context.Context, channelID, userID string, options ...slack.MsgOption) (string, error)
}
