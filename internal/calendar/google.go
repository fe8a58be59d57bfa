package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/cattonb/google-calendar/internal/availability"
	"github.com/cattonb/google-calendar/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleClient reads busy intervals from and writes meetings to Google
// Calendar. Its consistency model governs true conflict prevention; this
// service only promises to never commit against data it fetched stale.
type GoogleClient struct {
	svc    *gcal.Service
	logger logger.Logger
}

func NewGoogleClient(ctx context.Context, credentialsFile string, log logger.Logger) (*GoogleClient, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &GoogleClient{svc: svc, logger: log}, nil
}

// BusyIntervals queries FreeBusy for [from, to). Google already resolves
// the returned periods to an absolute timeline.
func (c *GoogleClient) BusyIntervals(ctx context.Context, calendarID string, from, to time.Time) (availability.BusySet, error) {
	req := &gcal.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: calendarID}},
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query: %w", err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("freebusy response missing calendar %q", calendarID)
	}
	for _, e := range cal.Errors {
		return nil, fmt.Errorf("freebusy calendar %q: %s", calendarID, e.Reason)
	}

	busy := make(availability.BusySet, 0, len(cal.Busy))
	for _, p := range cal.Busy {
		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("parse busy start %q: %w", p.Start, err)
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("parse busy end %q: %w", p.End, err)
		}
		busy = append(busy, availability.Interval{Start: start, End: end})
	}

	return busy, nil
}

func (c *GoogleClient) CreateEvent(ctx context.Context, input ports.CalendarEventInput) error {
	description := fmt.Sprintf("Booked by %s (%s)", input.GuestName, input.GuestEmail)
	if input.GuestNotes != "" {
		description += "\n\nAdditional details: " + input.GuestNotes
	}

	event := &gcal.Event{
		Summary:     fmt.Sprintf("%s + %s", input.GuestName, input.EventName),
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: input.StartTime.Format(time.RFC3339),
			TimeZone: input.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: input.EndTime.Format(time.RFC3339),
			TimeZone: input.Timezone,
		},
		Attendees: []*gcal.EventAttendee{
			{Email: input.GuestEmail, DisplayName: input.GuestName},
		},
	}

	created, err := c.svc.Events.Insert(input.CalendarID, event).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	c.logger.Info("calendar event created",
		logger.String("calendar_id", input.CalendarID),
		logger.String("event_id", created.Id),
	)

	return nil
}
