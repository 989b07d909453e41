package contract

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
)

// BotService is what the HTTP handlers drive
type BotService interface {
	HandleClick(ctx context.Context, click entity.Click)
	ConfigureChannel(ctx context.Context, destinationID, channelID, name string) (*entity.Destination, error)
	SetMobileFriendly(ctx context.Context, destinationID string, enabled bool) (*entity.Destination, error)
	SetLocale(ctx context.Context, destinationID, locale string) (*entity.Destination, error)
	RemoveDestination(ctx context.Context, destinationID string) error
	GetDestination(ctx context.Context, destinationID string) (*entity.Destination, error)
	MapImage(ctx context.Context, hour int, locale string) ([]byte, error)
}
