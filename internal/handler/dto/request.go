package dto

type CreateOwnerRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required"`
	CalendarID     string `json:"calendar_id"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type AvailabilityRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type SaveScheduleRequest struct {
	Timezone       string                `json:"timezone" binding:"required"`
	Availabilities []AvailabilityRequest `json:"availabilities" binding:"dive"`
}

type CreateEventTypeRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	IsActive        *bool  `json:"is_active"`
}

type UpdateEventTypeRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration_minutes"`
	IsActive        *bool   `json:"is_active"`
}

type CommitMeetingRequest struct {
	StartTime  string `json:"start_time" binding:"required"`
	Timezone   string `json:"timezone" binding:"required"`
	GuestName  string `json:"guest_name" binding:"required"`
	GuestEmail string `json:"guest_email" binding:"required,email"`
	GuestNotes string `json:"guest_notes"`
}
