package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/map-rotation-bot/internal/domain/entity"
)

const destinationColumns = `
	id, channel_id, name, mobile_friendly, locale,
	message_id, last_updated_at, created_at, updated_at
`

type destinationRepo struct {
	db dbConn
}

func newDestinationRepo(db dbConn) contract.DestinationRepo {
	return &destinationRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestination(row rowScanner) (*entity.Destination, error) {
	d := &entity.Destination{}
	var lastUpdatedAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.ChannelID,
		&d.Name,
		&d.MobileFriendly,
		&d.Locale,
		&d.LastMessageID,
		&lastUpdatedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastUpdatedAt.Valid {
		t := lastUpdatedAt.Time.UTC()
		d.LastUpdatedAt = &t
	}
	return d, nil
}

func (r *destinationRepo) List(ctx context.Context) ([]*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer rows.Close()

	var destinations []*entity.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate destinations: %w", err)
	}
	return destinations, nil
}

func (r *destinationRepo) GetByID(ctx context.Context, id string) (*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = ?`

	d, err := scanDestination(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}
	return d, nil
}

func (r *destinationRepo) Upsert(ctx context.Context, destination *entity.Destination) error {
	// right hand side column references read the row as it was before the update
	query := `
		INSERT INTO destinations (id, channel_id, name, mobile_friendly, locale)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			message_id = CASE WHEN destinations.channel_id = excluded.channel_id
				THEN destinations.message_id ELSE '' END,
			last_updated_at = CASE WHEN destinations.channel_id = excluded.channel_id
				THEN destinations.last_updated_at ELSE NULL END,
			channel_id = excluded.channel_id,
			name = excluded.name,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		destination.ID,
		destination.ChannelID,
		destination.Name,
		destination.MobileFriendly,
		destination.Locale,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert destination: %w", err)
	}
	return nil
}

func (r *destinationRepo) Update(ctx context.Context, destination *entity.Destination) error {
	query := `
		UPDATE destinations
		SET name = ?, mobile_friendly = ?, locale = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		destination.Name,
		destination.MobileFriendly,
		destination.Locale,
		destination.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update destination: %w", err)
	}
	return expectAffected(result, destination.ID)
}

func (r *destinationRepo) SetMessageState(ctx context.Context, id, messageID string, updatedAt time.Time) error {
	query := `
		UPDATE destinations
		SET message_id = ?, last_updated_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, messageID, updatedAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set message state: %w", err)
	}
	return expectAffected(result, id)
}

func (r *destinationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete destination: %w", err)
	}
	return nil
}

func expectAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("destination %s: %w", id, domain.ErrDestinationNotFound)
	}
	return nil
}
