package validator

import (
	"regexp"
	"strings"

	"github.com/darkr4m/actually-star-k9/core/validation"
	"github.com/darkr4m/actually-star-k9/modules/clients/dto"
	"github.com/darkr4m/actually-star-k9/modules/clients/entity"
)

var (
	// Personal names: letters plus spaces, hyphens and apostrophes.
	nameRegex  = regexp.MustCompile(`^[\p{L}][\p{L} '\-]*$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validateName(result *validation.Result, field, value string) {
	value = strings.TrimSpace(value)
	if len(value) < 2 || len(value) > 100 {
		result.Add(field, "must be between 2 and 100 characters")
		return
	}
	if !nameRegex.MatchString(value) {
		result.Add(field, "may only contain letters, spaces, hyphens and apostrophes")
	}
}

func ValidateCreateClientRequest(req *dto.CreateClientRequest) *validation.Result {
	result := validation.NewResult()

	validateName(result, "first_name", req.FirstName)
	validateName(result, "last_name", req.LastName)

	email := strings.TrimSpace(req.Email)
	if email == "" {
		result.Add("email", "email is required")
	} else if !emailRegex.MatchString(email) {
		result.Add("email", "email format is invalid")
	}

	return result
}

func ValidateUpdateClientRequest(req *dto.UpdateClientRequest) *validation.Result {
	result := validation.NewResult()

	if req.FirstName != nil {
		validateName(result, "first_name", *req.FirstName)
	}
	if req.LastName != nil {
		validateName(result, "last_name", *req.LastName)
	}
	if req.Email != nil && !emailRegex.MatchString(strings.TrimSpace(*req.Email)) {
		result.Add("email", "email format is invalid")
	}

	return result
}

func ValidateAddressRequest(req *dto.AddressRequest) *validation.Result {
	result := validation.NewResult()

	if req.AddressType != "" && !entity.AddressType(req.AddressType).Valid() {
		result.Add("address_type", "must be one of PHYSICAL, MAILING, BILLING, OTHER")
	}
	if strings.TrimSpace(req.StreetAddress1) == "" {
		result.Add("street_address_1", "street address is required")
	}
	if strings.TrimSpace(req.City) == "" {
		result.Add("city", "city is required")
	}
	if req.Country != "" && len(req.Country) != 2 {
		result.Add("country", "must be a two letter country code")
	}

	return result
}
