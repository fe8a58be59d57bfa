package availability

import (
	"testing"
	"time"

	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYorkSchedule(t *testing.T, availabilities ...domain.Availability) *domain.Schedule {
	t.Helper()
	return &domain.Schedule{
		OwnerID:        "o1",
		Timezone:       "America/New_York",
		Availabilities: availabilities,
	}
}

func TestNewIndex_SortsWindowsWithinDay(t *testing.T) {
	s := newYorkSchedule(t,
		domain.Availability{DayOfWeek: domain.DayMonday, StartTime: "14:00", EndTime: "17:00"},
		domain.Availability{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "12:00"},
	)

	ix, err := NewIndex(s)
	require.NoError(t, err)

	ws := ix.WindowsFor(time.Monday)
	require.Len(t, ws, 2)
	assert.Equal(t, Window{Start: 9 * 60, End: 12 * 60}, ws[0])
	assert.Equal(t, Window{Start: 14 * 60, End: 17 * 60}, ws[1])
	assert.Empty(t, ix.WindowsFor(time.Tuesday))
}

func TestNewIndex_AdjoiningWindowsAllowed(t *testing.T) {
	s := newYorkSchedule(t,
		domain.Availability{DayOfWeek: domain.DayFriday, StartTime: "09:00", EndTime: "12:00"},
		domain.Availability{DayOfWeek: domain.DayFriday, StartTime: "12:00", EndTime: "17:00"},
	)

	_, err := NewIndex(s)
	assert.NoError(t, err)
}

func TestNewIndex_RejectsOverlappingWindows(t *testing.T) {
	s := newYorkSchedule(t,
		domain.Availability{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "12:00"},
		domain.Availability{DayOfWeek: domain.DayMonday, StartTime: "11:00", EndTime: "14:00"},
	)

	_, err := NewIndex(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlapping")
}

func TestNewIndex_RejectsInvertedWindow(t *testing.T) {
	s := newYorkSchedule(t,
		domain.Availability{DayOfWeek: domain.DayMonday, StartTime: "17:00", EndTime: "09:00"},
	)

	_, err := NewIndex(s)
	assert.Error(t, err)
}

func TestNewIndex_RejectsMalformedClock(t *testing.T) {
	s := newYorkSchedule(t,
		domain.Availability{DayOfWeek: domain.DayMonday, StartTime: "9am", EndTime: "17:00"},
	)

	_, err := NewIndex(s)
	assert.Error(t, err)
}

func TestNewIndex_RejectsUnknownDay(t *testing.T) {
	s := newYorkSchedule(t,
		domain.Availability{DayOfWeek: "someday", StartTime: "09:00", EndTime: "17:00"},
	)

	_, err := NewIndex(s)
	assert.Error(t, err)
}

func TestNewIndex_RejectsUnknownTimezone(t *testing.T) {
	s := &domain.Schedule{OwnerID: "o1", Timezone: "Mars/Olympus_Mons"}

	_, err := NewIndex(s)
	assert.Error(t, err)
}

func TestIndex_Contains_UsesBaseTimezoneWeekday(t *testing.T) {
	s := newYorkSchedule(t,
		domain.Availability{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "17:00"},
	)
	ix, err := NewIndex(s)
	require.NoError(t, err)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// Tuesday 06:00 in Tokyo is Monday 16:00 in New York.
	inside := time.Date(2025, 3, 4, 6, 0, 0, 0, tokyo)
	assert.True(t, ix.Contains(inside, inside.Add(30*time.Minute)))

	// Monday 12:00 in Tokyo is still Sunday 22:00 in New York.
	outside := time.Date(2025, 3, 3, 12, 0, 0, 0, tokyo)
	assert.False(t, ix.Contains(outside, outside.Add(30*time.Minute)))
}

func TestIndex_Contains_NoMergeAcrossDays(t *testing.T) {
	s := newYorkSchedule(t,
		domain.Availability{DayOfWeek: domain.DayMonday, StartTime: "23:00", EndTime: "23:45"},
		domain.Availability{DayOfWeek: domain.DayTuesday, StartTime: "00:00", EndTime: "09:00"},
	)
	ix, err := NewIndex(s)
	require.NoError(t, err)

	ny := ix.Location()
	c := time.Date(2025, 3, 3, 23, 30, 0, 0, ny) // Monday
	assert.False(t, ix.Contains(c, c.Add(30*time.Minute)), "meeting may not cross the day boundary")

	c = time.Date(2025, 3, 4, 0, 0, 0, 0, ny) // Tuesday
	assert.True(t, ix.Contains(c, c.Add(30*time.Minute)))
}
