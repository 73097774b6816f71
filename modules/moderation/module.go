package moderation

import (
	"community-events-api/core/database"
	"community-events-api/core/middleware"
	"community-events-api/core/taskqueue"
	eventRepository "community-events-api/modules/event/repository"
	"community-events-api/modules/moderation/controller"
	"community-events-api/modules/moderation/router"
	"community-events-api/modules/moderation/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the moderation module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, tasks taskqueue.Enqueuer) {
	events := eventRepository.NewEventRepository(db)
	svc := service.NewModerationService(events, tasks)
	ctrl := controller.NewModerationController(svc)
	rtr := router.NewModerationRouter(ctrl)

	rtr.Setup(e, mw)
}
