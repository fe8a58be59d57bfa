package ports

import (
	"context"

	"github.com/cattonb/google-calendar/internal/domain"
)

type MeetingNotifier interface {
	NotifyMeetingBooked(ctx context.Context, owner *domain.Owner, eventType *domain.EventType, meeting *domain.Meeting)
}
