package validator

import (
	"regexp"
	"strings"

	"github.com/darkr4m/actually-star-k9/core/validation"
	"github.com/darkr4m/actually-star-k9/modules/users/dto"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateRegisterRequest(req *dto.RegisterRequest) *validation.Result {
	result := validation.NewResult()

	email := strings.TrimSpace(req.Email)
	if email == "" {
		result.Add("email", "email is required")
	} else if !emailRegex.MatchString(email) {
		result.Add("email", "email format is invalid")
	}

	if len(req.Password) < 8 {
		result.Add("password", "password must be at least 8 characters")
	}
	if req.Password != req.Password2 {
		result.Add("password2", "passwords do not match")
	}

	if strings.TrimSpace(req.FirstName) == "" {
		result.Add("first_name", "first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		result.Add("last_name", "last name is required")
	}

	return result
}

func ValidateLoginRequest(req *dto.LoginRequest) *validation.Result {
	result := validation.NewResult()

	if strings.TrimSpace(req.Email) == "" {
		result.Add("email", "email is required")
	}
	if req.Password == "" {
		result.Add("password", "password is required")
	}

	return result
}
