package router

import (
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/users/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	Controller *controller.UserController
}

func NewUserRouter(ctrl *controller.UserController) *UserRouter {
	return &UserRouter{Controller: ctrl}
}

func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	pub := e.Group("/api/v1/public/users")
	pub.POST("/register", r.Controller.Register)
	pub.POST("/login", r.Controller.Login)

	priv := e.Group("/api/v1/private/users", mw.AuthMiddleware())
	priv.POST("/logout", r.Controller.Logout)
	priv.GET("/me", r.Controller.Me)
}
