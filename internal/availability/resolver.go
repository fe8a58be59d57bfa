package availability

import (
	"iter"
	"time"
)

// Resolve filters candidates down to bookable instants for the given
// duration: the occupied interval [c, c+duration) must not overlap any busy
// interval and must fit inside a single weekly window of the index. The
// result preserves candidate order. Resolve is a pure filter; it performs
// no I/O and never blocks.
func Resolve(candidates iter.Seq[time.Time], durationMinutes int, idx *Index, busy BusySet) []time.Time {
	dur := time.Duration(durationMinutes) * time.Minute

	var out []time.Time
	for c := range candidates {
		end := c.Add(dur)
		if busy.Overlaps(c, end) {
			continue
		}
		if !idx.Contains(c, end) {
			continue
		}
		out = append(out, c)
	}

	return out
}
