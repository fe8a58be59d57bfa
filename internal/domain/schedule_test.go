package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortAvailabilities_WeekOrderNotAlphabetical(t *testing.T) {
	availabilities := []Availability{
		{DayOfWeek: DayFriday, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: DaySunday, StartTime: "10:00", EndTime: "12:00"},
		{DayOfWeek: DayMonday, StartTime: "13:00", EndTime: "17:00"},
		{DayOfWeek: DayMonday, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: DayTuesday, StartTime: "09:00", EndTime: "17:00"},
	}

	SortAvailabilities(availabilities)

	want := []Availability{
		{DayOfWeek: DayMonday, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: DayMonday, StartTime: "13:00", EndTime: "17:00"},
		{DayOfWeek: DayTuesday, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: DayFriday, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: DaySunday, StartTime: "10:00", EndTime: "12:00"},
	}
	assert.Equal(t, want, availabilities)
}

func TestDayOfWeek_Ordinal(t *testing.T) {
	for i, day := range DaysOfWeek {
		assert.Equal(t, i, day.Ordinal())
	}
	assert.Equal(t, len(DaysOfWeek), DayOfWeek("caturday").Ordinal())
}

func TestDayOfWeek_Weekday(t *testing.T) {
	wd, ok := DayMonday.Weekday()
	assert.True(t, ok)
	assert.Equal(t, time.Monday, wd)

	wd, ok = DaySunday.Weekday()
	assert.True(t, ok)
	assert.Equal(t, time.Sunday, wd)

	_, ok = DayOfWeek("caturday").Weekday()
	assert.False(t, ok)
}
