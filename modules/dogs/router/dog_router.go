package router

import (
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/dogs/controller"

	"github.com/labstack/echo/v4"
)

type DogRouter struct {
	Controller *controller.DogController
}

func NewDogRouter(ctrl *controller.DogController) *DogRouter {
	return &DogRouter{Controller: ctrl}
}

func (r *DogRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	dogs := e.Group("/api/v1/private/dogs", mw.AuthMiddleware())
	dogs.POST("", r.Controller.Create)
	dogs.GET("", r.Controller.List)
	dogs.GET("/:id", r.Controller.Get)
	dogs.PATCH("/:id", r.Controller.Update)
	dogs.DELETE("/:id", r.Controller.Delete)
	dogs.POST("/:id/photo", r.Controller.UploadPhoto)
}
