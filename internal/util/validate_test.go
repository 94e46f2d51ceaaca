package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string   `json:"name" validate:"required,max=5"`
	Email  string   `json:"email" validate:"omitempty,email"`
	Skills []string `json:"skills" validate:"min=1"`
	Inner  struct {
		Gender string `json:"gender" validate:"oneof=Male Female Other"`
	} `json:"inner"`
}

func TestValidateStruct(t *testing.T) {
	var s sample
	s.Inner.Gender = "Male"
	s.Skills = []string{"go"}
	s.Name = "Ann"
	assert.Empty(t, ValidateStruct(s))

	s.Name = ""
	s.Email = "nope"
	s.Skills = nil
	s.Inner.Gender = "X"
	assert.ElementsMatch(t, []string{
		"name is required",
		"email must be a valid email address",
		"skills needs at least 1 entries",
		"inner.gender must be one of: Male Female Other",
	}, ValidateStruct(s))
}
