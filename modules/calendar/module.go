package calendar

import (
	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/calendar/controller"
	"github.com/darkr4m/actually-star-k9/modules/calendar/repository"
	"github.com/darkr4m/actually-star-k9/modules/calendar/router"
	"github.com/darkr4m/actually-star-k9/modules/calendar/service"
	googleauthrepo "github.com/darkr4m/actually-star-k9/modules/googleauth/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewCalendarRepository(db)
	credRepo := googleauthrepo.NewGoogleAuthRepository(db)
	svc := service.NewCalendarService(repo, credRepo)
	ctrl := controller.NewCalendarController(svc)

	router.NewCalendarRouter(ctrl).Setup(e, mw)
}
