package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cattonb/google-calendar/internal/availability"
	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/cattonb/google-calendar/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type OwnerSvc interface {
	Create(ctx context.Context, input domain.CreateOwnerInput) (*domain.Owner, error)
	List(ctx context.Context) ([]*domain.Owner, error)
}

type ScheduleSvc interface {
	Save(ctx context.Context, ownerID string, input domain.SaveScheduleInput) (*domain.Schedule, error)
	Get(ctx context.Context, ownerID string) (*domain.Schedule, error)
}

type EventTypeSvc interface {
	Create(ctx context.Context, ownerID string, input domain.CreateEventTypeInput) (*domain.EventType, error)
	Update(ctx context.Context, ownerID, id string, input domain.UpdateEventTypeInput) (*domain.EventType, error)
	Get(ctx context.Context, ownerID, id string) (*domain.EventType, error)
	List(ctx context.Context, ownerID string) ([]*domain.EventType, error)
}

type BookingSvc interface {
	ListBookableTimes(ctx context.Context, ownerID, eventTypeID string) ([]time.Time, error)
	CommitMeeting(ctx context.Context, input domain.CommitMeetingInput) (*domain.Meeting, error)
}

type Handler struct {
	ownerService     OwnerSvc
	scheduleService  ScheduleSvc
	eventTypeService EventTypeSvc
	bookingService   BookingSvc
}

func NewHandler(
	ownerService OwnerSvc,
	scheduleService ScheduleSvc,
	eventTypeService EventTypeSvc,
	bookingService BookingSvc,
) *Handler {
	return &Handler{
		ownerService:     ownerService,
		scheduleService:  scheduleService,
		eventTypeService: eventTypeService,
		bookingService:   bookingService,
	}
}

// Owners

func (h *Handler) CreateOwner(c *ginext.Context) {
	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateOwnerInput{
		Email:          req.Email,
		Name:           req.Name,
		CalendarID:     req.CalendarID,
		TelegramChatID: req.TelegramChatID,
	}

	owner, err := h.ownerService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOwnerResponse(owner))
}

func (h *Handler) ListOwners(c *ginext.Context) {
	owners, err := h.ownerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OwnerResponse, 0, len(owners))
	for _, o := range owners {
		resp = append(resp, dto.ToOwnerResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

// Schedule

func (h *Handler) SaveSchedule(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SaveScheduleInput{
		Timezone:       req.Timezone,
		Availabilities: make([]domain.Availability, 0, len(req.Availabilities)),
	}
	for _, a := range req.Availabilities {
		input.Availabilities = append(input.Availabilities, domain.Availability{
			DayOfWeek: domain.DayOfWeek(a.DayOfWeek),
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}

	schedule, err := h.scheduleService.Save(c.Request.Context(), ownerID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleResponse(schedule))
}

func (h *Handler) GetSchedule(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	schedule, err := h.scheduleService.Get(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleResponse(schedule))
}

// Event types

func (h *Handler) CreateEventType(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	var req dto.CreateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEventTypeInput{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		IsActive:        req.IsActive,
	}

	eventType, err := h.eventTypeService.Create(c.Request.Context(), ownerID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventTypeResponse(eventType))
}

func (h *Handler) UpdateEventType(c *ginext.Context) {
	ownerID := c.Param("id")
	eventTypeID := c.Param("eventTypeID")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}
	if _, err := uuid.Parse(eventTypeID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event type id"})
		return
	}

	var req dto.UpdateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventTypeInput{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		IsActive:        req.IsActive,
	}

	eventType, err := h.eventTypeService.Update(c.Request.Context(), ownerID, eventTypeID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventTypeResponse(eventType))
}

func (h *Handler) GetEventType(c *ginext.Context) {
	ownerID := c.Param("id")
	eventTypeID := c.Param("eventTypeID")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}
	if _, err := uuid.Parse(eventTypeID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event type id"})
		return
	}

	eventType, err := h.eventTypeService.Get(c.Request.Context(), ownerID, eventTypeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventTypeResponse(eventType))
}

func (h *Handler) ListEventTypes(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}

	eventTypes, err := h.eventTypeService.List(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventTypeResponse, 0, len(eventTypes))
	for _, e := range eventTypes {
		resp = append(resp, dto.ToEventTypeResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Booking

func (h *Handler) ListBookableTimes(c *ginext.Context) {
	ownerID := c.Param("id")
	eventTypeID := c.Param("eventTypeID")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}
	if _, err := uuid.Parse(eventTypeID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event type id"})
		return
	}

	// The guest timezone only localizes the response; resolution is done
	// on the absolute timeline and the schedule's base timezone.
	var loc *time.Location
	if tz := c.Query("timezone"); tz != "" {
		var err error
		if loc, err = availability.LoadZone(tz); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown timezone"})
			return
		}
	}

	times, err := h.bookingService.ListBookableTimes(c.Request.Context(), ownerID, eventTypeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookableTimesResponse(times, loc))
}

func (h *Handler) CommitMeeting(c *ginext.Context) {
	ownerID := c.Param("id")
	eventTypeID := c.Param("eventTypeID")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
		return
	}
	if _, err := uuid.Parse(eventTypeID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event type id"})
		return
	}

	var req dto.CommitMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}

	input := domain.CommitMeetingInput{
		OwnerID:     ownerID,
		EventTypeID: eventTypeID,
		StartTime:   startTime,
		Timezone:    req.Timezone,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestNotes:  req.GuestNotes,
	}

	meeting, err := h.bookingService.CommitMeeting(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMeetingResponse(meeting))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrOwnerNotFound),
		errors.Is(err, domain.ErrScheduleNotFound),
		errors.Is(err, domain.ErrEventTypeNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCalendarWrite):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
