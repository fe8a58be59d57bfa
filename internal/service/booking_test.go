package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cattonb/google-calendar/internal/availability"
	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/cattonb/google-calendar/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fullWeekSchedule keeps commit tests independent of the day the suite
// happens to run on.
func fullWeekSchedule(ownerID string) *domain.Schedule {
	avail := make([]domain.Availability, 0, len(domain.DaysOfWeek))
	for _, day := range domain.DaysOfWeek {
		avail = append(avail, domain.Availability{DayOfWeek: day, StartTime: "00:00", EndTime: "23:59"})
	}
	return &domain.Schedule{OwnerID: ownerID, Timezone: "UTC", Availabilities: avail}
}

func newBookingFixture(t *testing.T) (*BookingService, *mocks.MockScheduleRepo, *mocks.MockEventTypeRepo, *mocks.MockOwnerRepo, *mocks.MockCalendar, *mocks.MockMeetingNotifier) {
	t.Helper()
	scheduleRepo := mocks.NewMockScheduleRepo(t)
	eventTypeRepo := mocks.NewMockEventTypeRepo(t)
	ownerRepo := mocks.NewMockOwnerRepo(t)
	cal := mocks.NewMockCalendar(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(scheduleRepo, eventTypeRepo, ownerRepo, cal, notifier, log, 15, 2)
	return svc, scheduleRepo, eventTypeRepo, ownerRepo, cal, notifier
}

func TestBookingService_CommitMeeting_Committed(t *testing.T) {
	svc, scheduleRepo, eventTypeRepo, ownerRepo, cal, notifier := newBookingFixture(t)

	owner := &domain.Owner{ID: "o1", Email: "alice@example.com", CalendarID: "alice@example.com"}
	eventType := &domain.EventType{ID: "et1", OwnerID: "o1", Name: "Intro Call", DurationMinutes: 30, IsActive: true}
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)

	ownerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(owner, nil)
	eventTypeRepo.EXPECT().GetActive(mock.Anything, "o1", "et1").Return(eventType, nil)
	scheduleRepo.EXPECT().GetByOwner(mock.Anything, "o1").Return(fullWeekSchedule("o1"), nil)
	cal.EXPECT().BusyIntervals(mock.Anything, "alice@example.com", mock.Anything, mock.Anything).Return(nil, nil)
	cal.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyMeetingBooked(mock.Anything, owner, eventType, mock.Anything).Return()

	meeting, err := svc.CommitMeeting(context.Background(), domain.CommitMeetingInput{
		OwnerID:     "o1",
		EventTypeID: "et1",
		StartTime:   start,
		Timezone:    "America/New_York",
		GuestName:   "Bob",
		GuestEmail:  "bob@example.com",
		GuestNotes:  "First meeting",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, meeting.ID)
	assert.Equal(t, "o1", meeting.OwnerID)
	assert.Equal(t, "et1", meeting.EventTypeID)
	assert.True(t, meeting.StartTime.Equal(start))
	assert.Equal(t, 30, meeting.DurationMinutes)
	assert.True(t, meeting.EndTime().Equal(start.Add(30*time.Minute)))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_CommitMeeting_SlotTaken(t *testing.T) {
	svc, scheduleRepo, eventTypeRepo, ownerRepo, cal, _ := newBookingFixture(t)

	owner := &domain.Owner{ID: "o1", CalendarID: "alice@example.com"}
	eventType := &domain.EventType{ID: "et1", OwnerID: "o1", Name: "Intro Call", DurationMinutes: 30, IsActive: true}
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)

	ownerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(owner, nil)
	eventTypeRepo.EXPECT().GetActive(mock.Anything, "o1", "et1").Return(eventType, nil)
	scheduleRepo.EXPECT().GetByOwner(mock.Anything, "o1").Return(fullWeekSchedule("o1"), nil)
	cal.EXPECT().BusyIntervals(mock.Anything, "alice@example.com", mock.Anything, mock.Anything).Return(availability.BusySet{
		{Start: start.Add(15 * time.Minute), End: start.Add(45 * time.Minute)},
	}, nil)

	_, err := svc.CommitMeeting(context.Background(), domain.CommitMeetingInput{
		OwnerID:     "o1",
		EventTypeID: "et1",
		StartTime:   start,
		Timezone:    "UTC",
		GuestName:   "Bob",
		GuestEmail:  "bob@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	assert.Len(t, cal.Calls, 1, "no calendar write after rejection")
}

func TestBookingService_CommitMeeting_CalendarWriteFails(t *testing.T) {
	svc, scheduleRepo, eventTypeRepo, ownerRepo, cal, _ := newBookingFixture(t)

	owner := &domain.Owner{ID: "o1", CalendarID: "alice@example.com"}
	eventType := &domain.EventType{ID: "et1", OwnerID: "o1", Name: "Intro Call", DurationMinutes: 30, IsActive: true}
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)

	ownerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(owner, nil)
	eventTypeRepo.EXPECT().GetActive(mock.Anything, "o1", "et1").Return(eventType, nil)
	scheduleRepo.EXPECT().GetByOwner(mock.Anything, "o1").Return(fullWeekSchedule("o1"), nil)
	cal.EXPECT().BusyIntervals(mock.Anything, "alice@example.com", mock.Anything, mock.Anything).Return(nil, nil)
	cal.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(errors.New("insert event: backend error"))

	_, err := svc.CommitMeeting(context.Background(), domain.CommitMeetingInput{
		OwnerID:     "o1",
		EventTypeID: "et1",
		StartTime:   start,
		Timezone:    "UTC",
		GuestName:   "Bob",
		GuestEmail:  "bob@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCalendarWrite)
}

func TestBookingService_CommitMeeting_Validation(t *testing.T) {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)

	cases := []struct {
		name  string
		input domain.CommitMeetingInput
	}{
		{
			name:  "missing guest name",
			input: domain.CommitMeetingInput{OwnerID: "o1", EventTypeID: "et1", StartTime: start, Timezone: "UTC", GuestEmail: "bob@example.com"},
		},
		{
			name:  "missing guest email",
			input: domain.CommitMeetingInput{OwnerID: "o1", EventTypeID: "et1", StartTime: start, Timezone: "UTC", GuestName: "Bob"},
		},
		{
			name:  "unknown timezone",
			input: domain.CommitMeetingInput{OwnerID: "o1", EventTypeID: "et1", StartTime: start, Timezone: "Mars/Olympus", GuestName: "Bob", GuestEmail: "bob@example.com"},
		},
		{
			name:  "start in the past",
			input: domain.CommitMeetingInput{OwnerID: "o1", EventTypeID: "et1", StartTime: time.Now().UTC().Add(-time.Hour), Timezone: "UTC", GuestName: "Bob", GuestEmail: "bob@example.com"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, ownerRepo, _, _ := newBookingFixture(t)

			_, err := svc.CommitMeeting(context.Background(), tc.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, ownerRepo.Calls)
		})
	}
}

func TestBookingService_CommitMeeting_OwnerNotFound(t *testing.T) {
	svc, _, _, ownerRepo, _, _ := newBookingFixture(t)

	ownerRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrOwnerNotFound)

	_, err := svc.CommitMeeting(context.Background(), domain.CommitMeetingInput{
		OwnerID:     "missing",
		EventTypeID: "et1",
		StartTime:   time.Now().UTC().Add(48 * time.Hour),
		Timezone:    "UTC",
		GuestName:   "Bob",
		GuestEmail:  "bob@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestBookingService_CommitMeeting_EventTypeInactive(t *testing.T) {
	svc, _, eventTypeRepo, ownerRepo, _, _ := newBookingFixture(t)

	ownerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Owner{ID: "o1"}, nil)
	eventTypeRepo.EXPECT().GetActive(mock.Anything, "o1", "et1").Return(nil, domain.ErrEventTypeNotFound)

	_, err := svc.CommitMeeting(context.Background(), domain.CommitMeetingInput{
		OwnerID:     "o1",
		EventTypeID: "et1",
		StartTime:   time.Now().UTC().Add(48 * time.Hour),
		Timezone:    "UTC",
		GuestName:   "Bob",
		GuestEmail:  "bob@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventTypeNotFound)
}

func TestBookingService_ListBookableTimes(t *testing.T) {
	svc, scheduleRepo, eventTypeRepo, ownerRepo, cal, _ := newBookingFixture(t)

	owner := &domain.Owner{ID: "o1", CalendarID: "alice@example.com"}
	eventType := &domain.EventType{ID: "et1", OwnerID: "o1", Name: "Intro Call", DurationMinutes: 30, IsActive: true}

	ownerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(owner, nil)
	eventTypeRepo.EXPECT().GetActive(mock.Anything, "o1", "et1").Return(eventType, nil)
	scheduleRepo.EXPECT().GetByOwner(mock.Anything, "o1").Return(fullWeekSchedule("o1"), nil)
	cal.EXPECT().BusyIntervals(mock.Anything, "alice@example.com", mock.Anything, mock.Anything).Return(nil, nil)

	times, err := svc.ListBookableTimes(context.Background(), "o1", "et1")

	require.NoError(t, err)
	require.NotEmpty(t, times)

	now := time.Now().UTC()
	for i, ts := range times {
		assert.True(t, ts.After(now.Add(-15*time.Minute)), "instant %d before the query window", i)
		assert.Zero(t, ts.Minute()%15, "instant %d off the step grid", i)
		if i > 0 {
			assert.True(t, ts.After(times[i-1]), "instants out of order at %d", i)
		}
	}
}

func TestBookingService_ListBookableTimes_ScheduleMissing(t *testing.T) {
	svc, scheduleRepo, eventTypeRepo, ownerRepo, _, _ := newBookingFixture(t)

	ownerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Owner{ID: "o1"}, nil)
	eventTypeRepo.EXPECT().GetActive(mock.Anything, "o1", "et1").Return(&domain.EventType{ID: "et1", DurationMinutes: 30}, nil)
	scheduleRepo.EXPECT().GetByOwner(mock.Anything, "o1").Return(nil, domain.ErrScheduleNotFound)

	_, err := svc.ListBookableTimes(context.Background(), "o1", "et1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestBookingService_ListBookableTimes_BusyFetchFails(t *testing.T) {
	svc, scheduleRepo, eventTypeRepo, ownerRepo, cal, _ := newBookingFixture(t)

	ownerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Owner{ID: "o1", CalendarID: "alice@example.com"}, nil)
	eventTypeRepo.EXPECT().GetActive(mock.Anything, "o1", "et1").Return(&domain.EventType{ID: "et1", DurationMinutes: 30, IsActive: true}, nil)
	scheduleRepo.EXPECT().GetByOwner(mock.Anything, "o1").Return(fullWeekSchedule("o1"), nil)
	cal.EXPECT().BusyIntervals(mock.Anything, "alice@example.com", mock.Anything, mock.Anything).Return(nil, errors.New("freebusy query: timeout"))

	_, err := svc.ListBookableTimes(context.Background(), "o1", "et1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get busy intervals")
}
