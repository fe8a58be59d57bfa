package availability

import (
	"iter"
	"time"
)

// Candidates yields instants on a fixed-step grid from start (rounded up to
// the next step boundary; an instant already on the boundary is kept) until
// end, exclusive. The sequence is lazy and can be ranged over any number of
// times. The generator does not truncate for meeting duration; window
// containment during resolution handles overrun past end.
func Candidates(start, end time.Time, step time.Duration) iter.Seq[time.Time] {
	first := start.Truncate(step)
	if first.Before(start) {
		first = first.Add(step)
	}

	return func(yield func(time.Time) bool) {
		for t := first; t.Before(end); t = t.Add(step) {
			if !yield(t) {
				return
			}
		}
	}
}

// Single wraps one proposed instant as a candidate sequence, used by the
// commit path to re-run resolution for exactly the chosen slot.
func Single(t time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		yield(t)
	}
}
