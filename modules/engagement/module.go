package engagement

import (
	"community-events-api/core/database"
	"community-events-api/core/middleware"
	"community-events-api/modules/engagement/controller"
	"community-events-api/modules/engagement/repository"
	"community-events-api/modules/engagement/router"
	"community-events-api/modules/engagement/service"
	eventRepository "community-events-api/modules/event/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the engagement module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewEngagementRepository(db)
	events := eventRepository.NewEventRepository(db)
	svc := service.NewEngagementService(repo, events)
	ctrl := controller.NewEngagementController(svc)
	rtr := router.NewEngagementRouter(ctrl)

	rtr.Setup(e, mw)
}
