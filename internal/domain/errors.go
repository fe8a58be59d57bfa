package domain

import "errors"

var (
	ErrOwnerNotFound     = errors.New("owner not found")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrEventTypeNotFound = errors.New("event type not found")
)

var (
	ErrSlotUnavailable = errors.New("slot is no longer available")
	ErrCalendarWrite   = errors.New("calendar event could not be created")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
