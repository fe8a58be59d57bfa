package domain

import (
	"sort"
	"time"
)

type DayOfWeek string

const (
	DayMonday    DayOfWeek = "monday"
	DayTuesday   DayOfWeek = "tuesday"
	DayWednesday DayOfWeek = "wednesday"
	DayThursday  DayOfWeek = "thursday"
	DayFriday    DayOfWeek = "friday"
	DaySaturday  DayOfWeek = "saturday"
	DaySunday    DayOfWeek = "sunday"
)

var DaysOfWeek = []DayOfWeek{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// Ordinal is the Monday-first position of the day. Days are stored as
// text, so collation order is alphabetical and useless for display.
func (d DayOfWeek) Ordinal() int {
	for i, day := range DaysOfWeek {
		if day == d {
			return i
		}
	}
	return len(DaysOfWeek)
}

// Weekday maps the schedule day onto time.Weekday.
func (d DayOfWeek) Weekday() (time.Weekday, bool) {
	switch d {
	case DayMonday:
		return time.Monday, true
	case DayTuesday:
		return time.Tuesday, true
	case DayWednesday:
		return time.Wednesday, true
	case DayThursday:
		return time.Thursday, true
	case DayFriday:
		return time.Friday, true
	case DaySaturday:
		return time.Saturday, true
	case DaySunday:
		return time.Sunday, true
	}
	return 0, false
}

// Availability is one weekly window, times are HH:MM wall clock
// in the schedule's timezone.
type Availability struct {
	DayOfWeek DayOfWeek `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type Schedule struct {
	OwnerID        string         `json:"owner_id"`
	Timezone       string         `json:"timezone"`
	Availabilities []Availability `json:"availabilities"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type SaveScheduleInput struct {
	Timezone       string
	Availabilities []Availability
}

// SortAvailabilities orders windows Monday through Sunday, earliest start
// first within a day.
func SortAvailabilities(availabilities []Availability) {
	sort.SliceStable(availabilities, func(i, j int) bool {
		if availabilities[i].DayOfWeek != availabilities[j].DayOfWeek {
			return availabilities[i].DayOfWeek.Ordinal() < availabilities[j].DayOfWeek.Ordinal()
		}
		return availabilities[i].StartTime < availabilities[j].StartTime
	})
}
