package controller

import (
	"github.com/darkr4m/actually-star-k9/core/controller"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/core/utils"
	"github.com/darkr4m/actually-star-k9/modules/users/dto"
	"github.com/darkr4m/actually-star-k9/modules/users/service"
	"github.com/darkr4m/actually-star-k9/modules/users/validator"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    userService,
	}
}

func (ctrl *UserController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.RegisterRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateRegisterRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	user, err := ctrl.UserService.Register(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.Created(c, user, "Register success")
}

func (ctrl *UserController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateLoginRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	tokens, err := ctrl.UserService.Login(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, tokens, "Login success")
}

func (ctrl *UserController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token, err := utils.GetTokenFromHeader(c)
	if err != nil {
		return ctrl.BadRequest(errors.ErrMissingAuthorizationHeader, "Invalid request data", nil)
	}

	if err := ctrl.UserService.Logout(ctx, token); err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, nil, "Logout success")
}

func (ctrl *UserController) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := middleware.UserID(c)
	if !ok {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required", nil)
	}

	user, err := ctrl.UserService.Me(ctx, userID)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, user, "User profile")
}
