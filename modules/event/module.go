package event

import (
	"community-events-api/core/database"
	"community-events-api/core/middleware"
	"community-events-api/core/taskqueue"
	engagementRepository "community-events-api/modules/engagement/repository"
	"community-events-api/modules/event/controller"
	"community-events-api/modules/event/repository"
	"community-events-api/modules/event/router"
	"community-events-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, tasks taskqueue.Enqueuer) {
	repo := repository.NewEventRepository(db)
	engagement := engagementRepository.NewEngagementRepository(db)
	svc := service.NewEventService(repo, engagement, tasks)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}
