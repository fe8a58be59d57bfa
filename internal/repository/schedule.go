package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ScheduleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScheduleRepo(db *dbpg.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Save replaces the owner's schedule in one transaction: upsert the schedule
// row, drop every window row, insert the new set. A concurrent resolution
// pass reads either the old set or the new set, never a mix.
func (r *ScheduleRepository) Save(ctx context.Context, s *domain.Schedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	scheduleQuery := `INSERT INTO schedules (owner_id, timezone, created_at, updated_at)
					  VALUES ($1, $2, $3, $3)
					  ON CONFLICT (owner_id)
					  DO UPDATE SET timezone = EXCLUDED.timezone, updated_at = EXCLUDED.updated_at`
	if _, err = tx.ExecContext(ctx, scheduleQuery, s.OwnerID, s.Timezone, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert schedule: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM schedule_availabilities WHERE owner_id = $1`, s.OwnerID,
	); err != nil {
		return fmt.Errorf("clear availabilities: %w", err)
	}

	insertQuery := `INSERT INTO schedule_availabilities (id, owner_id, day_of_week, start_time, end_time)
					VALUES ($1, $2, $3, $4, $5)`
	for _, a := range s.Availabilities {
		if _, err = tx.ExecContext(
			ctx, insertQuery,
			uuid.New().String(), s.OwnerID, string(a.DayOfWeek), a.StartTime, a.EndTime,
		); err != nil {
			return fmt.Errorf("insert availability: %w", err)
		}
	}

	return tx.Commit()
}

func (r *ScheduleRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.Schedule, error) {
	query := `SELECT owner_id, timezone, created_at, updated_at
			  FROM schedules
			  WHERE owner_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	var s domain.Schedule
	if err = row.Scan(&s.OwnerID, &s.Timezone, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	windowsQuery := `SELECT day_of_week, start_time, end_time
					 FROM schedule_availabilities
					 WHERE owner_id = $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, windowsQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list availabilities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Availability
		if err = rows.Scan(&a.DayOfWeek, &a.StartTime, &a.EndTime); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		s.Availabilities = append(s.Availabilities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availabilities: %w", err)
	}

	// day_of_week is text; an ORDER BY would come back alphabetical.
	domain.SortAvailabilities(s.Availabilities)

	return &s, nil
}
