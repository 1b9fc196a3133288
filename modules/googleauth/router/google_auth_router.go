package router

import (
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/controller"

	"github.com/labstack/echo/v4"
)

type GoogleAuthRouter struct {
	Controller *controller.GoogleAuthController
}

func NewGoogleAuthRouter(ctrl *controller.GoogleAuthController) *GoogleAuthRouter {
	return &GoogleAuthRouter{Controller: ctrl}
}

func (r *GoogleAuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	priv := e.Group("/api/v1/private", mw.AuthMiddleware())
	google := priv.Group("/google")
	google.GET("/login", r.Controller.GoogleLogin)
	google.POST("/callback", r.Controller.GoogleCallback)
}
