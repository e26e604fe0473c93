package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string  `validate:"required,email"`
	Amount float64 `validate:"gt=0"`
	Status string  `validate:"oneof=active blocked"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(sampleRequest{
		Email:  "admin@example.com",
		Amount: 10,
		Status: "active",
	})
	assert.NoError(t, err)
}

func TestValidateRequestNamesOffendingFields(t *testing.T) {
	err := ValidateRequest(sampleRequest{
		Email:  "not-an-email",
		Amount: 0,
		Status: "weird",
	})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "Email (email)")
	assert.Contains(t, fiberErr.Message, "Amount (gt)")
	assert.Contains(t, fiberErr.Message, "Status (oneof)")
}
