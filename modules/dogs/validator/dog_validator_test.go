package validator

import (
	"testing"

	"github.com/darkr4m/actually-star-k9/modules/dogs/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateDogRequest(t *testing.T) {
	assert.False(t, ValidateCreateDogRequest(&dto.CreateDogRequest{Name: "Rex"}).HasError())
	assert.True(t, ValidateCreateDogRequest(&dto.CreateDogRequest{}).HasError(), "missing name")
	assert.True(t, ValidateCreateDogRequest(&dto.CreateDogRequest{Name: "Rex", Sex: "NEUTER"}).HasError(), "unknown sex")
	assert.True(t, ValidateCreateDogRequest(&dto.CreateDogRequest{Name: "Rex", Status: "RETIRED"}).HasError(), "unknown status")

	zero := 0.0
	assert.True(t, ValidateCreateDogRequest(&dto.CreateDogRequest{Name: "Rex", WeightKg: &zero}).HasError(), "non-positive weight")
}

func TestValidateUpdateDogRequest(t *testing.T) {
	assert.False(t, ValidateUpdateDogRequest(&dto.UpdateDogRequest{}).HasError(), "absent fields are not validated")

	empty := ""
	assert.True(t, ValidateUpdateDogRequest(&dto.UpdateDogRequest{Name: &empty}).HasError())

	sex := "FEMALE"
	assert.False(t, ValidateUpdateDogRequest(&dto.UpdateDogRequest{Sex: &sex}).HasError())
}
