package availability

import (
	"fmt"
	"time"
)

// LoadZone resolves an IANA timezone identifier into a location whose UTC
// offset is evaluated per instant, so DST transitions are handled at the
// moment of each conversion rather than from a cached offset.
func LoadZone(id string) (*time.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("timezone is empty")
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", id, err)
	}
	return loc, nil
}

// parseClock parses an HH:MM wall-clock value into minutes from midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
