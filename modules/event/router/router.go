package router

import (
	"community-events-api/core/middleware"
	"community-events-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event lifecycle routes
type EventRouter struct {
	EventController *controller.EventController
}

// NewEventRouter creates a new router
func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public")
	publicRoutes.GET("/events", r.EventController.ListEvents)
	publicRoutes.GET("/events/slug/:slug", r.EventController.GetEventBySlug)
	publicRoutes.GET("/events/:id", r.EventController.GetEventDetail)

	privateRoutes := v1.Group("/private")
	eventRoutes := privateRoutes.Group("/events", mw.AuthMiddleware())
	eventRoutes.POST("", r.EventController.CreateEvent)
	eventRoutes.GET("", r.EventController.ListMyEvents)
	eventRoutes.PUT("/:id", r.EventController.UpdateEvent)
	eventRoutes.DELETE("/:id", r.EventController.DeleteEvent)
}
