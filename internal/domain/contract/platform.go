package contract

//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=../../../mocks/platform_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
	"github.com/diegoclair/map-rotation-bot/internal/domain/rotation"
)

// Messenger is the chat transport the services publish through
type Messenger interface {
	// SendMessage posts a new message and returns its id
	SendMessage(ctx context.Context, channelID string, payload *entity.Payload) (string, error)
	// EditMessage returns domain.ErrMessageNotFound when the message is gone
	EditMessage(ctx context.Context, channelID, messageID string, payload *entity.Payload) error
	PinMessage(ctx context.Context, channelID, messageID string) error
	FetchMessage(ctx context.Context, channelID, messageID string) (*entity.Payload, error)
	SendEphemeral(ctx context.Context, channelID, userID, text string) error
}

// RenderInput is everything the image backend needs for one hour and locale
type RenderInput struct {
	Now        time.Time
	Current    rotation.Entry
	Forecast   []rotation.Entry
	Translator Translator
}

// Renderer turns the rotation state into a PNG image
type Renderer interface {
	Render(ctx context.Context, in RenderInput) ([]byte, error)
}

// Translator resolves message keys for one locale. Missing keys come back as
// the key itself.
type Translator interface {
	T(key string, params map[string]string) string
	Locale() string
}

type Localizer interface {
	For(locale string) Translator
	// Supported normalises a locale tag and reports whether a bundle exists for it
	Supported(locale string) (string, bool)
}

type Clock interface {
	Now() time.Time
}
