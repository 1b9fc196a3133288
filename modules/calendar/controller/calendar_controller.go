package controller

import (
	"github.com/darkr4m/actually-star-k9/core/controller"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	controller.BaseController
	CalendarService service.CalendarService
}

func NewCalendarController(calendarService service.CalendarService) *CalendarController {
	return &CalendarController{
		BaseController:  controller.NewBaseController(),
		CalendarService: calendarService,
	}
}

// SyncEvents fetches upcoming Google Calendar events for the authenticated
// user and returns the locally stored copies.
func (ctrl *CalendarController) SyncEvents(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required", nil)
	}

	result, err := ctrl.CalendarService.SyncEvents(ctx, userID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, result, "Calendar events synced")
}

// ListEvents returns the locally stored calendar events without syncing.
func (ctrl *CalendarController) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	if _, ok := middleware.UserID(c); !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required", nil)
	}

	events, err := ctrl.CalendarService.ListEvents(ctx)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, events, "Calendar events")
}
