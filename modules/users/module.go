package users

import (
	"github.com/darkr4m/actually-star-k9/core/cache"
	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/core/utils"
	"github.com/darkr4m/actually-star-k9/modules/users/controller"
	"github.com/darkr4m/actually-star-k9/modules/users/repository"
	"github.com/darkr4m/actually-star-k9/modules/users/router"
	"github.com/darkr4m/actually-star-k9/modules/users/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache, tokens *utils.TokenManager, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, cache, tokens)
	ctrl := controller.NewUserController(svc)

	router.NewUserRouter(ctrl).Setup(e, mw)
}
