package router

import (
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/clients/controller"

	"github.com/labstack/echo/v4"
)

type ClientRouter struct {
	Controller *controller.ClientController
}

func NewClientRouter(ctrl *controller.ClientController) *ClientRouter {
	return &ClientRouter{Controller: ctrl}
}

func (r *ClientRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	clients := e.Group("/api/v1/private/clients", mw.AuthMiddleware())
	clients.POST("", r.Controller.Create)
	clients.GET("", r.Controller.List)
	clients.GET("/:id", r.Controller.Get)
	clients.PATCH("/:id", r.Controller.Update)
	clients.DELETE("/:id", r.Controller.Delete)
	clients.POST("/:id/addresses", r.Controller.AddAddress)
	clients.DELETE("/:id/addresses/:addressId", r.Controller.RemoveAddress)
}
