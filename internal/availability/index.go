package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/cattonb/google-calendar/internal/domain"
)

// Window is a half-open [Start, End) wall-clock range on one weekday,
// in minutes from midnight of the schedule's timezone.
type Window struct {
	Start int
	End   int
}

// Index is a schedule snapshot prepared for resolution: per-weekday windows,
// ordered and non-overlapping, in the schedule's base timezone. It is
// immutable once built; a resolution pass never observes schedule edits.
type Index struct {
	loc     *time.Location
	windows map[time.Weekday][]Window
}

// NewIndex builds an index from a schedule. It fails on an unknown timezone,
// an unknown day name, malformed or inverted HH:MM windows, and on windows
// that overlap within the same day. Overlap is rejected here for the same
// reason it is rejected on save: a candidate must have exactly one
// containing window.
func NewIndex(s *domain.Schedule) (*Index, error) {
	loc, err := LoadZone(s.Timezone)
	if err != nil {
		return nil, err
	}

	windows := make(map[time.Weekday][]Window, len(domain.DaysOfWeek))
	for _, a := range s.Availabilities {
		wd, ok := a.DayOfWeek.Weekday()
		if !ok {
			return nil, fmt.Errorf("unknown day of week %q", a.DayOfWeek)
		}
		start, err := parseClock(a.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(a.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, fmt.Errorf("window %s %s-%s: start must be before end", a.DayOfWeek, a.StartTime, a.EndTime)
		}
		windows[wd] = append(windows[wd], Window{Start: start, End: end})
	}

	for wd, ws := range windows {
		sort.Slice(ws, func(i, j int) bool { return ws[i].Start < ws[j].Start })
		for i := 1; i < len(ws); i++ {
			if ws[i].Start < ws[i-1].End {
				return nil, fmt.Errorf("overlapping windows on %s", wd)
			}
		}
	}

	return &Index{loc: loc, windows: windows}, nil
}

// Location is the schedule's base timezone.
func (ix *Index) Location() *time.Location {
	return ix.loc
}

// WindowsFor returns the ordered windows for one weekday.
func (ix *Index) WindowsFor(wd time.Weekday) []Window {
	return ix.windows[wd]
}

// Contains reports whether [start, end) fits entirely inside a single
// window. The weekday and the window boundaries are taken from the base
// timezone's view of the start instant, never from the guest's calendar
// date, which may differ near midnight. A range spanning two windows or a
// day boundary is not contained even if the neighbouring windows adjoin.
func (ix *Index) Contains(start, end time.Time) bool {
	local := start.In(ix.loc)
	year, month, day := local.Date()

	for _, w := range ix.windows[local.Weekday()] {
		ws := time.Date(year, month, day, w.Start/60, w.Start%60, 0, 0, ix.loc)
		we := time.Date(year, month, day, w.End/60, w.End%60, 0, 0, ix.loc)
		if !start.Before(ws) && !end.After(we) {
			return true
		}
	}

	return false
}
