package dto

import (
	"time"

	"github.com/cattonb/google-calendar/internal/domain"
)

type OwnerResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	CalendarID     string `json:"calendar_id"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type AvailabilityResponse struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleResponse struct {
	OwnerID        string                 `json:"owner_id"`
	Timezone       string                 `json:"timezone"`
	Availabilities []AvailabilityResponse `json:"availabilities"`
	UpdatedAt      string                 `json:"updated_at"`
}

type EventTypeResponse struct {
	ID              string `json:"id"`
	OwnerID         string `json:"owner_id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
}

// BookableTimeResponse carries the instant in UTC plus the same instant on
// the requested guest wall clock, for display only.
type BookableTimeResponse struct {
	Start string `json:"start"`
	Local string `json:"local,omitempty"`
}

type BookableTimesResponse struct {
	Timezone string                 `json:"timezone,omitempty"`
	Times    []BookableTimeResponse `json:"times"`
}

type MeetingResponse struct {
	ID              string `json:"id"`
	OwnerID         string `json:"owner_id"`
	EventTypeID     string `json:"event_type_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestNotes      string `json:"guest_notes,omitempty"`
	Timezone        string `json:"timezone"`
	CreatedAt       string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToOwnerResponse(o *domain.Owner) OwnerResponse {
	return OwnerResponse{
		ID:             o.ID,
		Email:          o.Email,
		Name:           o.Name,
		CalendarID:     o.CalendarID,
		TelegramChatID: o.TelegramChatID,
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
}

func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	availabilities := make([]AvailabilityResponse, 0, len(s.Availabilities))
	for _, a := range s.Availabilities {
		availabilities = append(availabilities, AvailabilityResponse{
			DayOfWeek: string(a.DayOfWeek),
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}

	return ScheduleResponse{
		OwnerID:        s.OwnerID,
		Timezone:       s.Timezone,
		Availabilities: availabilities,
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventTypeResponse(e *domain.EventType) EventTypeResponse {
	return EventTypeResponse{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Name:            e.Name,
		Description:     e.Description,
		DurationMinutes: e.DurationMinutes,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookableTimesResponse(times []time.Time, loc *time.Location) BookableTimesResponse {
	resp := BookableTimesResponse{
		Times: make([]BookableTimeResponse, 0, len(times)),
	}
	if loc != nil {
		resp.Timezone = loc.String()
	}

	for _, t := range times {
		bt := BookableTimeResponse{Start: t.UTC().Format(time.RFC3339)}
		if loc != nil {
			bt.Local = t.In(loc).Format(time.RFC3339)
		}
		resp.Times = append(resp.Times, bt)
	}

	return resp
}

func ToMeetingResponse(m *domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		EventTypeID:     m.EventTypeID,
		StartTime:       m.StartTime.Format(time.RFC3339),
		EndTime:         m.EndTime().Format(time.RFC3339),
		DurationMinutes: m.DurationMinutes,
		GuestName:       m.GuestName,
		GuestEmail:      m.GuestEmail,
		GuestNotes:      m.GuestNotes,
		Timezone:        m.Timezone,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
}
