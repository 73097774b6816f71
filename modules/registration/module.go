package registration

import (
	"community-events-api/core/database"
	"community-events-api/core/middleware"
	"community-events-api/modules/registration/controller"
	"community-events-api/modules/registration/repository"
	"community-events-api/modules/registration/router"
	"community-events-api/modules/registration/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the registration module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewRegistrationRepository(db)
	svc := service.NewRegistrationService(repo)
	ctrl := controller.NewRegistrationController(svc)
	rtr := router.NewRegistrationRouter(ctrl)

	rtr.Setup(e, mw)
}
