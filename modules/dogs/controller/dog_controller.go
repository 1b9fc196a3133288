package controller

import (
	"github.com/darkr4m/actually-star-k9/core/controller"
	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/params"
	"github.com/darkr4m/actually-star-k9/modules/dogs/dto"
	"github.com/darkr4m/actually-star-k9/modules/dogs/service"
	"github.com/darkr4m/actually-star-k9/modules/dogs/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DogController struct {
	controller.BaseController
	DogService service.DogService
}

func NewDogController(dogService service.DogService) *DogController {
	return &DogController{
		BaseController: controller.NewBaseController(),
		DogService:     dogService,
	}
}

func (ctrl *DogController) pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, ctrl.BadRequest(errors.ErrInvalidInput, "Invalid id", nil)
	}
	return id, nil
}

func (ctrl *DogController) Create(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CreateDogRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateDogRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	dog, err := ctrl.DogService.CreateDog(ctx, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.Created(c, dog, "Dog created")
}

func (ctrl *DogController) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ctrl.pathID(c)
	if err != nil {
		return err
	}

	dog, err := ctrl.DogService.GetDog(ctx, id)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, dog, "Dog detail")
}

func (ctrl *DogController) List(c echo.Context) error {
	ctx := c.Request().Context()

	qp := params.FromContext(c)
	result, err := ctrl.DogService.ListDogs(ctx, &qp)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, result, "Dog list")
}

func (ctrl *DogController) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ctrl.pathID(c)
	if err != nil {
		return err
	}

	requestData := new(dto.UpdateDogRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateDogRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	dog, err := ctrl.DogService.UpdateDog(ctx, id, requestData)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, dog, "Dog updated")
}

func (ctrl *DogController) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ctrl.pathID(c)
	if err != nil {
		return err
	}

	if err := ctrl.DogService.DeleteDog(ctx, id); err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, nil, "Dog deleted")
}

// UploadPhoto accepts a multipart form with a "photo" file field.
func (ctrl *DogController) UploadPhoto(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ctrl.pathID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "photo file is required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "could not read photo", nil)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := ctrl.DogService.UploadPhoto(ctx, id, file, contentType)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}

	return ctrl.SuccessResponse(c, result, "Photo uploaded")
}
