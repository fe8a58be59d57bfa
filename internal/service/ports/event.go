package ports

import (
	"context"

	"github.com/cattonb/google-calendar/internal/domain"
)

type EventTypeRepo interface {
	Create(ctx context.Context, e *domain.EventType) error
	Update(ctx context.Context, e *domain.EventType) error
	GetByOwnerAndID(ctx context.Context, ownerID, id string) (*domain.EventType, error)
	// GetActive returns the event type only when it exists and is active.
	GetActive(ctx context.Context, ownerID, id string) (*domain.EventType, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.EventType, error)
}
