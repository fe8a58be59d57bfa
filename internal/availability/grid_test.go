package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(seq func(func(time.Time) bool)) []time.Time {
	var out []time.Time
	for t := range seq {
		out = append(out, t)
	}
	return out
}

func TestCandidates_RoundsStartUpToStep(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 7, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC)

	got := collect(Candidates(start, end, 15*time.Minute))

	require.Len(t, got, 3)
	assert.Equal(t, time.Date(2025, 3, 3, 10, 15, 0, 0, time.UTC), got[0])
	assert.Equal(t, time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC), got[1])
	assert.Equal(t, time.Date(2025, 3, 3, 10, 45, 0, 0, time.UTC), got[2])
}

func TestCandidates_StartOnBoundaryIsKept(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 15, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 10, 45, 0, 0, time.UTC)

	got := collect(Candidates(start, end, 15*time.Minute))

	require.Len(t, got, 2)
	assert.Equal(t, start, got[0])
}

func TestCandidates_EndIsExclusive(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC)

	got := collect(Candidates(start, end, 15*time.Minute))

	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2025, 3, 3, 10, 15, 0, 0, time.UTC), got[1])
}

func TestCandidates_EmptyRange(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	assert.Empty(t, collect(Candidates(start, start, 15*time.Minute)))
	assert.Empty(t, collect(Candidates(start, start.Add(-time.Hour), 15*time.Minute)))
}

func TestCandidates_Restartable(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	seq := Candidates(start, end, 15*time.Minute)

	first := collect(seq)
	second := collect(seq)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestCandidates_EarlyBreak(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	n := 0
	for range Candidates(start, end, 15*time.Minute) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
