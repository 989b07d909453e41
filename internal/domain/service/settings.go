package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
)

// ConfigureChannel points a destination at channelID, creating it on first
// use. The Home view is published there right after.
func (s *botService) ConfigureChannel(ctx context.Context, destinationID, channelID, name string) (*entity.Destination, error) {
	var destination *entity.Destination

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		err := tx.Destination().Upsert(ctx, &entity.Destination{
			ID:        destinationID,
			ChannelID: channelID,
			Name:      name,
		})
		if err != nil {
			return err
		}

		destination, err = mustGetDestination(ctx, tx, destinationID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure channel: %w", err)
	}

	s.republish(destinationID)
	return destination, nil
}

func (s *botService) SetMobileFriendly(ctx context.Context, destinationID string, enabled bool) (*entity.Destination, error) {
	destination, err := s.updateDestination(ctx, destinationID, func(d *entity.Destination) {
		d.MobileFriendly = enabled
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set mobile friendly: %w", err)
	}

	s.republish(destinationID)
	return destination, nil
}

// SetLocale stores the base language of locale, which must have a bundle
func (s *botService) SetLocale(ctx context.Context, destinationID, locale string) (*entity.Destination, error) {
	norm, ok := s.localizer.Supported(locale)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLocale, locale)
	}

	destination, err := s.updateDestination(ctx, destinationID, func(d *entity.Destination) {
		d.Locale = norm
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set locale: %w", err)
	}

	s.republish(destinationID)
	return destination, nil
}

func (s *botService) updateDestination(ctx context.Context, destinationID string, apply func(*entity.Destination)) (*entity.Destination, error) {
	var destination *entity.Destination

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		d, err := mustGetDestination(ctx, tx, destinationID)
		if err != nil {
			return err
		}

		apply(d)
		if err := tx.Destination().Update(ctx, d); err != nil {
			return err
		}
		destination = d
		return nil
	})
	return destination, err
}

func (s *botService) RemoveDestination(ctx context.Context, destinationID string) error {
	if err := s.dm.Destination().Delete(ctx, destinationID); err != nil {
		return fmt.Errorf("failed to remove destination: %w", err)
	}
	return nil
}

func (s *botService) GetDestination(ctx context.Context, destinationID string) (*entity.Destination, error) {
	return mustGetDestination(ctx, s.dm, destinationID)
}

// MapImage returns the rendered map for hour, which must be the active one
func (s *botService) MapImage(ctx context.Context, hour int, locale string) ([]byte, error) {
	return s.views.image(ctx, hour, locale)
}

func mustGetDestination(ctx context.Context, dm contract.DataManager, destinationID string) (*entity.Destination, error) {
	d, err := dm.Destination().GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDestinationNotFound
	}
	return d, nil
}
