package domain

import "time"

// Meeting is the committed result of a booking. It is never stored locally;
// the owner's calendar holds the durable copy.
type Meeting struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	EventTypeID     string    `json:"event_type_id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestNotes      string    `json:"guest_notes,omitempty"`
	Timezone        string    `json:"timezone"`
	CreatedAt       time.Time `json:"created_at"`
}

func (m *Meeting) EndTime() time.Time {
	return m.StartTime.Add(time.Duration(m.DurationMinutes) * time.Minute)
}

type CommitMeetingInput struct {
	OwnerID     string
	EventTypeID string
	StartTime   time.Time
	Timezone    string
	GuestName   string
	GuestEmail  string
	GuestNotes  string
}
