package validator

import (
	"testing"

	"github.com/darkr4m/actually-star-k9/modules/clients/dto"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() *dto.CreateClientRequest {
	return &dto.CreateClientRequest{
		FirstName: "Mary-Anne",
		LastName:  "O'Brien",
		Email:     "mary@example.com",
	}
}

func TestValidateCreateClientRequest(t *testing.T) {
	assert.False(t, ValidateCreateClientRequest(validCreateRequest()).HasError())
}

func TestValidateCreateClientRequestNames(t *testing.T) {
	tests := []struct {
		name  string
		first string
		ok    bool
	}{
		{"plain", "Dana", true},
		{"hyphenated", "Mary-Anne", true},
		{"apostrophe", "D'Angelo", true},
		{"accented", "Renée", true},
		{"too short", "D", false},
		{"digits", "Dana2", false},
		{"symbols", "Dana!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			req.FirstName = tt.first
			assert.Equal(t, !tt.ok, ValidateCreateClientRequest(req).HasError())
		})
	}
}

func TestValidateCreateClientRequestEmail(t *testing.T) {
	req := validCreateRequest()
	req.Email = "not-an-email"
	result := ValidateCreateClientRequest(req)
	assert.True(t, result.HasError())

	req.Email = ""
	assert.True(t, ValidateCreateClientRequest(req).HasError())
}

func TestValidateUpdateClientRequestPartial(t *testing.T) {
	// Absent fields are not validated.
	assert.False(t, ValidateUpdateClientRequest(&dto.UpdateClientRequest{}).HasError())

	bad := "X"
	assert.True(t, ValidateUpdateClientRequest(&dto.UpdateClientRequest{FirstName: &bad}).HasError())
}

func TestValidateAddressRequest(t *testing.T) {
	assert.False(t, ValidateAddressRequest(&dto.AddressRequest{
		AddressType:    "MAILING",
		StreetAddress1: "123 Main St",
		City:           "Springfield",
		Country:        "US",
	}).HasError())

	assert.True(t, ValidateAddressRequest(&dto.AddressRequest{
		AddressType:    "HOME",
		StreetAddress1: "123 Main St",
		City:           "Springfield",
	}).HasError(), "unknown address type")

	assert.True(t, ValidateAddressRequest(&dto.AddressRequest{
		StreetAddress1: "",
		City:           "Springfield",
	}).HasError(), "missing street")

	assert.True(t, ValidateAddressRequest(&dto.AddressRequest{
		StreetAddress1: "123 Main St",
		City:           "Springfield",
		Country:        "USA",
	}).HasError(), "three letter country")
}
