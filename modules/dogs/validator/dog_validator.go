package validator

import (
	"strings"

	"github.com/darkr4m/actually-star-k9/core/validation"
	"github.com/darkr4m/actually-star-k9/modules/dogs/dto"
	"github.com/darkr4m/actually-star-k9/modules/dogs/entity"
)

func validateNameField(result *validation.Result, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		result.Add("name", "name is required")
	} else if len(name) > 100 {
		result.Add("name", "name must be at most 100 characters")
	}
}

func ValidateCreateDogRequest(req *dto.CreateDogRequest) *validation.Result {
	result := validation.NewResult()

	validateNameField(result, req.Name)

	if req.Sex != "" && !entity.DogSex(req.Sex).Valid() {
		result.Add("sex", "must be one of MALE, FEMALE, UNKNOWN")
	}
	if req.Status != "" && !entity.DogStatus(req.Status).Valid() {
		result.Add("status", "must be one of PROSPECTIVE, ACTIVE, ON_HOLD, GRADUATED, INACTIVE")
	}
	if req.WeightKg != nil && *req.WeightKg <= 0 {
		result.Add("weight_kg", "weight must be greater than zero")
	}

	return result
}

func ValidateUpdateDogRequest(req *dto.UpdateDogRequest) *validation.Result {
	result := validation.NewResult()

	if req.Name != nil {
		validateNameField(result, *req.Name)
	}
	if req.Sex != nil && !entity.DogSex(*req.Sex).Valid() {
		result.Add("sex", "must be one of MALE, FEMALE, UNKNOWN")
	}
	if req.Status != nil && !entity.DogStatus(*req.Status).Valid() {
		result.Add("status", "must be one of PROSPECTIVE, ACTIVE, ON_HOLD, GRADUATED, INACTIVE")
	}
	if req.WeightKg != nil && *req.WeightKg <= 0 {
		result.Add("weight_kg", "weight must be greater than zero")
	}

	return result
}
