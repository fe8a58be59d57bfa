package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OwnerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOwnerRepo(db *dbpg.DB) *OwnerRepository {
	return &OwnerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OwnerRepository) Create(ctx context.Context, o *domain.Owner) error {
	query := `INSERT INTO owners (id, email, name, calendar_id, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.Email, o.Name, o.CalendarID, o.TelegramChatID, o.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert owner: %w", err)
	}

	return nil
}

func (r *OwnerRepository) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	query := `SELECT id, email, name, calendar_id, telegram_chat_id, created_at
			  FROM owners
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}

	var o domain.Owner
	if err = row.Scan(&o.ID, &o.Email, &o.Name, &o.CalendarID, &o.TelegramChatID, &o.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("scan owner: %w", err)
	}

	return &o, nil
}

func (r *OwnerRepository) List(ctx context.Context) ([]*domain.Owner, error) {
	query := `SELECT id, email, name, calendar_id, telegram_chat_id, created_at
			  FROM owners
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	var res []*domain.Owner
	for rows.Next() {
		var o domain.Owner
		if err = rows.Scan(&o.ID, &o.Email, &o.Name, &o.CalendarID, &o.TelegramChatID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}
