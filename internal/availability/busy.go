package availability

import "time"

// Interval is a half-open [Start, End) range on the absolute timeline,
// sourced from the owner's external calendar.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type BusySet []Interval

// Overlaps reports whether any busy interval intersects [start, end).
// Two half-open ranges overlap iff s1 < e2 && s2 < e1; intervals that
// merely touch do not conflict.
func (s BusySet) Overlaps(start, end time.Time) bool {
	for _, b := range s {
		if b.Start.Before(end) && b.End.After(start) {
			return true
		}
	}
	return false
}
