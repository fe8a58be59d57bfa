package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateOwner(c *ginext.Context)
	ListOwners(c *ginext.Context)
	SaveSchedule(c *ginext.Context)
	GetSchedule(c *ginext.Context)
	CreateEventType(c *ginext.Context)
	UpdateEventType(c *ginext.Context)
	GetEventType(c *ginext.Context)
	ListEventTypes(c *ginext.Context)
	ListBookableTimes(c *ginext.Context)
	CommitMeeting(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Owners
		api.POST("/owners", h.CreateOwner)
		api.GET("/owners", h.ListOwners)

		// Schedule
		api.PUT("/owners/:id/schedule", h.SaveSchedule)
		api.GET("/owners/:id/schedule", h.GetSchedule)

		// Event types
		api.POST("/owners/:id/event-types", h.CreateEventType)
		api.GET("/owners/:id/event-types", h.ListEventTypes)
		api.GET("/owners/:id/event-types/:eventTypeID", h.GetEventType)
		api.PATCH("/owners/:id/event-types/:eventTypeID", h.UpdateEventType)

		// Booking
		api.GET("/owners/:id/event-types/:eventTypeID/times", h.ListBookableTimes)
		api.POST("/owners/:id/event-types/:eventTypeID/meetings", h.CommitMeeting)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
