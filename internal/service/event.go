package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/cattonb/google-calendar/internal/service/ports"
	"github.com/google/uuid"
)

type EventTypeService struct {
	repo ports.EventTypeRepo
}

func NewEventTypeService(repo ports.EventTypeRepo) *EventTypeService {
	return &EventTypeService{repo: repo}
}

func validateDuration(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", domain.ErrValidation)
	}
	if minutes > domain.MaxEventDurationMinutes {
		return fmt.Errorf("%w: duration_minutes must be at most %d", domain.ErrValidation, domain.MaxEventDurationMinutes)
	}
	return nil
}

func (s *EventTypeService) Create(ctx context.Context, ownerID string, input domain.CreateEventTypeInput) (*domain.EventType, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validateDuration(input.DurationMinutes); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now().UTC()
	eventType := &domain.EventType{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		IsActive:        isActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, eventType); err != nil {
		return nil, fmt.Errorf("create event type: %w", err)
	}

	return eventType, nil
}

func (s *EventTypeService) Update(ctx context.Context, ownerID, id string, input domain.UpdateEventTypeInput) (*domain.EventType, error) {
	eventType, err := s.repo.GetByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		eventType.Name = *input.Name
	}
	if input.Description != nil {
		eventType.Description = *input.Description
	}
	if input.DurationMinutes != nil {
		if err := validateDuration(*input.DurationMinutes); err != nil {
			return nil, err
		}
		eventType.DurationMinutes = *input.DurationMinutes
	}
	if input.IsActive != nil {
		eventType.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, eventType); err != nil {
		return nil, fmt.Errorf("update event type: %w", err)
	}

	return eventType, nil
}

func (s *EventTypeService) Get(ctx context.Context, ownerID, id string) (*domain.EventType, error) {
	return s.repo.GetByOwnerAndID(ctx, ownerID, id)
}

func (s *EventTypeService) List(ctx context.Context, ownerID string) ([]*domain.EventType, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
