package router

import (
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	Controller *controller.CalendarController
}

func NewCalendarRouter(ctrl *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{Controller: ctrl}
}

func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	priv := e.Group("/api/v1/private", mw.AuthMiddleware())
	priv.GET("/calendar/events", r.Controller.SyncEvents)
	priv.GET("/calendar/events/local", r.Controller.ListEvents)
}
