package ports

import (
	"context"
	"time"

	"github.com/cattonb/google-calendar/internal/availability"
)

// CalendarEventInput is the data contract for writing a committed meeting
// to the owner's calendar.
type CalendarEventInput struct {
	CalendarID string
	EventName  string
	StartTime  time.Time
	EndTime    time.Time
	Timezone   string
	GuestName  string
	GuestEmail string
	GuestNotes string
}

// Calendar is the external calendar service. It is the sole source of truth
// for busy intervals; this system never caches them across requests.
type Calendar interface {
	BusyIntervals(ctx context.Context, calendarID string, from, to time.Time) (availability.BusySet, error)
	CreateEvent(ctx context.Context, input CalendarEventInput) error
}
