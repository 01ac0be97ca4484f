package utils

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindSample struct {
	Name     string `json:"name" binding:"required,max=5"`
	Category string `json:"category" binding:"required,category"`
	Date     string `json:"date" binding:"omitempty,isodate"`
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators()) // idempotent

	ok := bindSample{Name: "tee", Category: "tops", Date: "2024-06-01"}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	bad := bindSample{Name: "too long", Category: "hats", Date: "2024-02-30"}
	err := binding.Validator.ValidateStruct(&bad)
	require.Error(t, err)

	msg := ValidationMessage(err)
	assert.Contains(t, msg, "name must be at most 5")
	assert.Contains(t, msg, "category must be one of tops, bottoms")
	assert.Contains(t, msg, "date must be YYYY-MM-DD")
}

func TestValidationMessage_NonValidatorError(t *testing.T) {
	assert.Equal(t, "invalid request body", ValidationMessage(errors.New("EOF")))
}
