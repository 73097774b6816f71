package router

import (
	"community-events-api/core/constants"
	"community-events-api/core/middleware"
	"community-events-api/modules/moderation/controller"

	"github.com/labstack/echo/v4"
)

// ModerationRouter handles admin moderation routes
type ModerationRouter struct {
	ModerationController *controller.ModerationController
}

// NewModerationRouter creates a new router
func NewModerationRouter(moderationController *controller.ModerationController) *ModerationRouter {
	return &ModerationRouter{
		ModerationController: moderationController,
	}
}

// Setup registers moderation routes
func (r *ModerationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	adminRoutes := privateRoutes.Group("/admin/events",
		mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
	adminRoutes.GET("/pending", r.ModerationController.ListPending)
	adminRoutes.POST("/:id/approve", r.ModerationController.Approve)
	adminRoutes.POST("/:id/reject", r.ModerationController.Reject)
}
