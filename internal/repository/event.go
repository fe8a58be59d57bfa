package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventTypeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventTypeRepo(db *dbpg.DB) *EventTypeRepository {
	return &EventTypeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventTypeRepository) Create(ctx context.Context, e *domain.EventType) error {
	query := `INSERT INTO event_types (id, owner_id, name, description, duration_minutes, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OwnerID, e.Name, e.Description,
		e.DurationMinutes, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event type: %w", err)
	}

	return nil
}

func (r *EventTypeRepository) Update(ctx context.Context, e *domain.EventType) error {
	query := `UPDATE event_types
			  SET name = $3, description = $4, duration_minutes = $5, is_active = $6, updated_at = $7
			  WHERE owner_id = $1 AND id = $2`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.OwnerID, e.ID, e.Name, e.Description,
		e.DurationMinutes, e.IsActive, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update event type: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event type rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventTypeNotFound
	}

	return nil
}

func (r *EventTypeRepository) GetByOwnerAndID(ctx context.Context, ownerID, id string) (*domain.EventType, error) {
	query := `SELECT id, owner_id, name, description, duration_minutes, is_active, created_at, updated_at
			  FROM event_types
			  WHERE owner_id=$1 AND id=$2`

	return r.getOne(ctx, query, ownerID, id)
}

func (r *EventTypeRepository) GetActive(ctx context.Context, ownerID, id string) (*domain.EventType, error) {
	query := `SELECT id, owner_id, name, description, duration_minutes, is_active, created_at, updated_at
			  FROM event_types
			  WHERE owner_id=$1 AND id=$2 AND is_active`

	return r.getOne(ctx, query, ownerID, id)
}

func (r *EventTypeRepository) getOne(ctx context.Context, query string, args ...any) (*domain.EventType, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get event type: %w", err)
	}

	var e domain.EventType
	if err = row.Scan(
		&e.ID, &e.OwnerID, &e.Name, &e.Description,
		&e.DurationMinutes, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventTypeNotFound
		}
		return nil, fmt.Errorf("scan event type: %w", err)
	}

	return &e, nil
}

func (r *EventTypeRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.EventType, error) {
	query := `SELECT id, owner_id, name, description, duration_minutes, is_active, created_at, updated_at
			  FROM event_types
			  WHERE owner_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventType
	for rows.Next() {
		var e domain.EventType
		if err = rows.Scan(
			&e.ID, &e.OwnerID, &e.Name, &e.Description,
			&e.DurationMinutes, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event type: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
