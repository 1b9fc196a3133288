package controller

import (
	"github.com/darkr4m/actually-star-k9/core/controller"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/params"
	"github.com/darkr4m/actually-star-k9/modules/clients/dto"
	"github.com/darkr4m/actually-star-k9/modules/clients/service"
	"github.com/darkr4m/actually-star-k9/modules/clients/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ClientController struct {
	controller.BaseController
	ClientService service.ClientService
}

func NewClientController(clientService service.ClientService) *ClientController {
	return &ClientController{
		BaseController: controller.NewBaseController(),
		ClientService:  clientService,
	}
}

func (ctrl *ClientController) pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, ctrl.BadRequest(errors.ErrInvalidInput, "Invalid id", nil)
	}
	return id, nil
}

func (ctrl *ClientController) Create(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CreateClientRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateClientRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	client, err := ctrl.ClientService.CreateClient(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.Created(c, client, "Client created")
}

func (ctrl *ClientController) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ctrl.pathID(c, "id")
	if err != nil {
		return err
	}

	client, err := ctrl.ClientService.GetClient(ctx, id)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, client, "Client detail")
}

func (ctrl *ClientController) List(c echo.Context) error {
	ctx := c.Request().Context()

	qp := params.FromContext(c)
	result, err := ctrl.ClientService.ListClients(ctx, &qp)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, result, "Client list")
}

func (ctrl *ClientController) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ctrl.pathID(c, "id")
	if err != nil {
		return err
	}

	requestData := new(dto.UpdateClientRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateClientRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	client, err := ctrl.ClientService.UpdateClient(ctx, id, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, client, "Client updated")
}

func (ctrl *ClientController) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ctrl.pathID(c, "id")
	if err != nil {
		return err
	}

	if err := ctrl.ClientService.DeleteClient(ctx, id); err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, nil, "Client deleted")
}

func (ctrl *ClientController) AddAddress(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ctrl.pathID(c, "id")
	if err != nil {
		return err
	}

	requestData := new(dto.AddressRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateAddressRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	address, err := ctrl.ClientService.AddAddress(ctx, id, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.Created(c, address, "Address created")
}

func (ctrl *ClientController) RemoveAddress(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, err := ctrl.pathID(c, "id")
	if err != nil {
		return err
	}
	addressID, err := ctrl.pathID(c, "addressId")
	if err != nil {
		return err
	}

	if err := ctrl.ClientService.RemoveAddress(ctx, clientID, addressID); err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, nil, "Address deleted")
}
