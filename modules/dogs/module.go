package dogs

import (
	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/core/storage"
	"github.com/darkr4m/actually-star-k9/modules/dogs/controller"
	"github.com/darkr4m/actually-star-k9/modules/dogs/repository"
	"github.com/darkr4m/actually-star-k9/modules/dogs/router"
	"github.com/darkr4m/actually-star-k9/modules/dogs/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, store storage.ObjectStore, mw *middleware.Middleware) {
	repo := repository.NewDogRepository(db)
	svc := service.NewDogService(repo, store)
	ctrl := controller.NewDogController(svc)

	router.NewDogRouter(ctrl).Setup(e, mw)
}
