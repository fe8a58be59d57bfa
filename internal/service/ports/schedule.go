package ports

import (
	"context"

	"github.com/cattonb/google-calendar/internal/domain"
)

type ScheduleRepo interface {
	// Save replaces the owner's schedule wholesale: the schedule row is
	// upserted and the full window set is swapped in one transaction.
	Save(ctx context.Context, s *domain.Schedule) error
	GetByOwner(ctx context.Context, ownerID string) (*domain.Schedule, error)
}
