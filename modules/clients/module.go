package clients

import (
	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/clients/controller"
	"github.com/darkr4m/actually-star-k9/modules/clients/repository"
	"github.com/darkr4m/actually-star-k9/modules/clients/router"
	"github.com/darkr4m/actually-star-k9/modules/clients/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewClientRepository(db)
	svc := service.NewClientService(repo)
	ctrl := controller.NewClientController(svc)

	router.NewClientRouter(ctrl).Setup(e, mw)
}
