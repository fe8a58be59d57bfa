package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cattonb/google-calendar/internal/availability"
	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/cattonb/google-calendar/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// BookingService implements the guest-facing query and commit surfaces.
// Both fetch the current schedule and fresh busy intervals per call; the
// query result is advisory only and is never trusted at commit time.
type BookingService struct {
	scheduleRepo  ports.ScheduleRepo
	eventTypeRepo ports.EventTypeRepo
	ownerRepo     ports.OwnerRepo
	calendar      ports.Calendar
	notifier      ports.MeetingNotifier
	logger        logger.Logger
	stepMinutes   int
	horizonMonths int
}

func NewBookingService(
	scheduleRepo ports.ScheduleRepo,
	eventTypeRepo ports.EventTypeRepo,
	ownerRepo ports.OwnerRepo,
	calendar ports.Calendar,
	notifier ports.MeetingNotifier,
	logger logger.Logger,
	stepMinutes int,
	horizonMonths int,
) *BookingService {
	return &BookingService{
		scheduleRepo:  scheduleRepo,
		eventTypeRepo: eventTypeRepo,
		ownerRepo:     ownerRepo,
		calendar:      calendar,
		notifier:      notifier,
		logger:        logger,
		stepMinutes:   stepMinutes,
		horizonMonths: horizonMonths,
	}
}

// ListBookableTimes resolves the grid of bookable instants for one active
// event type, from now (rounded up to the next step boundary) through
// end-of-day of the horizon in the schedule's base timezone.
func (s *BookingService) ListBookableTimes(ctx context.Context, ownerID, eventTypeID string) ([]time.Time, error) {
	owner, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	eventType, err := s.eventTypeRepo.GetActive(ctx, ownerID, eventTypeID)
	if err != nil {
		return nil, fmt.Errorf("check event type: %w", err)
	}

	schedule, err := s.scheduleRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	index, err := availability.NewIndex(schedule)
	if err != nil {
		return nil, fmt.Errorf("build availability index: %w", err)
	}

	now := time.Now().UTC()
	end := s.horizonEnd(now, index.Location())

	busy, err := s.calendar.BusyIntervals(ctx, owner.CalendarID, now, end)
	if err != nil {
		return nil, fmt.Errorf("get busy intervals: %w", err)
	}

	step := time.Duration(s.stepMinutes) * time.Minute
	times := availability.Resolve(
		availability.Candidates(now, end, step),
		eventType.DurationMinutes, index, busy,
	)

	s.logger.Info("bookable times resolved",
		logger.String("owner_id", ownerID),
		logger.String("event_type_id", eventTypeID),
		logger.Int("count", len(times)),
	)

	return times, nil
}

// horizonEnd is the start of the day after the horizon date, computed on
// the schedule's own wall clock, so the last bookable day is a complete
// day in the owner's timezone.
func (s *BookingService) horizonEnd(now time.Time, loc *time.Location) time.Time {
	year, month, day := now.AddDate(0, s.horizonMonths, 0).In(loc).Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, loc)
}

// CommitMeeting runs the two-phase commit for a single proposed instant:
// re-validate against the current schedule and freshly fetched busy
// intervals, then write the calendar event. Validation failure surfaces as
// ErrSlotUnavailable; a failed calendar write as ErrCalendarWrite. Nothing
// is persisted locally, so there is no partial state to roll back.
func (s *BookingService) CommitMeeting(ctx context.Context, input domain.CommitMeetingInput) (*domain.Meeting, error) {
	if input.GuestName == "" {
		return nil, fmt.Errorf("%w: guest_name is required", domain.ErrValidation)
	}
	if input.GuestEmail == "" {
		return nil, fmt.Errorf("%w: guest_email is required", domain.ErrValidation)
	}
	if _, err := availability.LoadZone(input.Timezone); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if !input.StartTime.After(time.Now()) {
		return nil, fmt.Errorf("%w: start_time must be in the future", domain.ErrValidation)
	}

	owner, err := s.ownerRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	eventType, err := s.eventTypeRepo.GetActive(ctx, input.OwnerID, input.EventTypeID)
	if err != nil {
		return nil, fmt.Errorf("check event type: %w", err)
	}

	schedule, err := s.scheduleRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	index, err := availability.NewIndex(schedule)
	if err != nil {
		return nil, fmt.Errorf("build availability index: %w", err)
	}

	start := input.StartTime.UTC()
	end := start.Add(time.Duration(eventType.DurationMinutes) * time.Minute)

	busy, err := s.calendar.BusyIntervals(ctx, owner.CalendarID, start, end)
	if err != nil {
		return nil, fmt.Errorf("get busy intervals: %w", err)
	}

	if len(availability.Resolve(availability.Single(start), eventType.DurationMinutes, index, busy)) == 0 {
		return nil, domain.ErrSlotUnavailable
	}

	meeting := &domain.Meeting{
		ID:              uuid.New().String(),
		OwnerID:         input.OwnerID,
		EventTypeID:     input.EventTypeID,
		StartTime:       start,
		DurationMinutes: eventType.DurationMinutes,
		GuestName:       input.GuestName,
		GuestEmail:      input.GuestEmail,
		GuestNotes:      input.GuestNotes,
		Timezone:        input.Timezone,
		CreatedAt:       time.Now().UTC(),
	}

	if err = s.calendar.CreateEvent(ctx, ports.CalendarEventInput{
		CalendarID: owner.CalendarID,
		EventName:  eventType.Name,
		StartTime:  meeting.StartTime,
		EndTime:    meeting.EndTime(),
		Timezone:   input.Timezone,
		GuestName:  input.GuestName,
		GuestEmail: input.GuestEmail,
		GuestNotes: input.GuestNotes,
	}); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCalendarWrite, err)
	}

	s.logger.Info("meeting committed",
		logger.String("meeting_id", meeting.ID),
		logger.String("owner_id", input.OwnerID),
		logger.String("event_type_id", input.EventTypeID),
		logger.String("start_time", meeting.StartTime.Format(time.RFC3339)),
	)

	go s.notifier.NotifyMeetingBooked(context.WithoutCancel(ctx), owner, eventType, meeting)

	return meeting, nil
}
