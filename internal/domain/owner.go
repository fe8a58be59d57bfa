package domain

import "time"

// Owner binds an external identity to the Google calendar that backs it.
// CalendarID defaults to the owner's email, which is what the Google API
// accepts as a calendar id.
type Owner struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	CalendarID     string    `json:"calendar_id"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateOwnerInput struct {
	Email          string
	Name           string
	CalendarID     string
	TelegramChatID *int64
}
