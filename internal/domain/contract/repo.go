package contract

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Destination() DestinationRepo
}

// DestinationRepo defines the contract for destination repository.
// Lookups return nil, nil when the row does not exist.
type DestinationRepo interface {
	List(ctx context.Context) ([]*entity.Destination, error)
	GetByID(ctx context.Context, id string) (*entity.Destination, error)
	// Upsert creates the destination or moves it to a new channel. Moving
	// clears the stored message state.
	Upsert(ctx context.Context, destination *entity.Destination) error
	Update(ctx context.Context, destination *entity.Destination) error
	SetMessageState(ctx context.Context, id, messageID string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
