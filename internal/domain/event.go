package domain

import "time"

const MaxEventDurationMinutes = 12 * 60

type EventType struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateEventTypeInput struct {
	Name            string
	Description     string
	DurationMinutes int
	IsActive        *bool
}

type UpdateEventTypeInput struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	IsActive        *bool
}
