package router

import (
	"community-events-api/core/constants"
	"community-events-api/core/middleware"
	"community-events-api/modules/registration/controller"

	"github.com/labstack/echo/v4"
)

// RegistrationRouter handles registration routes
type RegistrationRouter struct {
	RegistrationController *controller.RegistrationController
}

// NewRegistrationRouter creates a new router
func NewRegistrationRouter(registrationController *controller.RegistrationController) *RegistrationRouter {
	return &RegistrationRouter{
		RegistrationController: registrationController,
	}
}

// Setup registers registration routes
func (r *RegistrationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	regRoutes := privateRoutes.Group("/events/:id", mw.AuthMiddleware())
	regRoutes.POST("/register", r.RegistrationController.Register)
	regRoutes.GET("/registration", r.RegistrationController.IsRegistered)
	regRoutes.GET("/registrations", r.RegistrationController.ListByEvent,
		mw.RequireRole(constants.RoleAdmin, constants.RoleOrganizer))
}
