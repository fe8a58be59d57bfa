package ports

import (
	"context"

	"github.com/cattonb/google-calendar/internal/domain"
)

type OwnerRepo interface {
	Create(ctx context.Context, o *domain.Owner) error
	GetByID(ctx context.Context, id string) (*domain.Owner, error)
	List(ctx context.Context) ([]*domain.Owner, error)
}
