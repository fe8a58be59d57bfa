package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cattonb/google-calendar/internal/availability"
	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/cattonb/google-calendar/internal/service/ports"
)

type ScheduleService struct {
	repo ports.ScheduleRepo
}

func NewScheduleService(repo ports.ScheduleRepo) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// Save validates and persists the owner's schedule with replace-all
// semantics. Validation goes through availability.NewIndex so that the
// write-time rules (known timezone, well-formed windows, no same-day
// overlap) are exactly the rules a resolution pass enforces.
func (s *ScheduleService) Save(ctx context.Context, ownerID string, input domain.SaveScheduleInput) (*domain.Schedule, error) {
	schedule := &domain.Schedule{
		OwnerID:        ownerID,
		Timezone:       input.Timezone,
		Availabilities: input.Availabilities,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if _, err := availability.NewIndex(schedule); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.repo.Save(ctx, schedule); err != nil {
		return nil, fmt.Errorf("save schedule: %w", err)
	}

	return schedule, nil
}

func (s *ScheduleService) Get(ctx context.Context, ownerID string) (*domain.Schedule, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}
