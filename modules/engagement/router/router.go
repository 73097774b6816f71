package router

import (
	"community-events-api/core/middleware"
	"community-events-api/modules/engagement/controller"

	"github.com/labstack/echo/v4"
)

// EngagementRouter handles like and comment routes
type EngagementRouter struct {
	EngagementController *controller.EngagementController
}

// NewEngagementRouter creates a new router
func NewEngagementRouter(engagementController *controller.EngagementController) *EngagementRouter {
	return &EngagementRouter{
		EngagementController: engagementController,
	}
}

// Setup registers engagement routes
func (r *EngagementRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public")
	publicRoutes.GET("/events/:id/comments", r.EngagementController.ListComments)

	privateRoutes := v1.Group("/private")
	engagementRoutes := privateRoutes.Group("/events/:id", mw.AuthMiddleware())
	engagementRoutes.PUT("/like", r.EngagementController.ToggleLike)
	engagementRoutes.GET("/like", r.EngagementController.GetLikeStatus)
	engagementRoutes.POST("/comments", r.EngagementController.PostComment)
}
