package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/cattonb/google-calendar/internal/service/ports"
	"github.com/google/uuid"
)

type OwnerService struct {
	repo ports.OwnerRepo
}

func NewOwnerService(repo ports.OwnerRepo) *OwnerService {
	return &OwnerService{repo: repo}
}

func (s *OwnerService) Create(ctx context.Context, input domain.CreateOwnerInput) (*domain.Owner, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = input.Email
	}

	owner := &domain.Owner{
		ID:             uuid.New().String(),
		Email:          input.Email,
		Name:           input.Name,
		CalendarID:     calendarID,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, owner); err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}

	return owner, nil
}

func (s *OwnerService) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OwnerService) List(ctx context.Context) ([]*domain.Owner, error) {
	return s.repo.List(ctx)
}
