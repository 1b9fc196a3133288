package controller

import (
	"github.com/darkr4m/actually-star-k9/core/controller"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/dto"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/service"

	"github.com/labstack/echo/v4"
)

type GoogleAuthController struct {
	controller.BaseController
	GoogleAuthService service.GoogleAuthService
}

func NewGoogleAuthController(googleAuthService service.GoogleAuthService) *GoogleAuthController {
	return &GoogleAuthController{
		BaseController:    controller.NewBaseController(),
		GoogleAuthService: googleAuthService,
	}
}

// GoogleLogin returns the Google consent URL for the authenticated user.
func (ctrl *GoogleAuthController) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required", nil)
	}

	authURL, err := ctrl.GoogleAuthService.GetGoogleAuthURL(ctx, userID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, authURL, "Google authorization URL generated")
}

// GoogleCallback exchanges the posted authorization code and stores the
// resulting credentials for the authenticated user.
func (ctrl *GoogleAuthController) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required", nil)
	}

	requestData := new(dto.GoogleCallbackRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	if err := ctrl.GoogleAuthService.HandleGoogleCallback(ctx, userID, requestData); err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, nil, "Google account linked")
}
