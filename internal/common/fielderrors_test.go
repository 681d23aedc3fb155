package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{
		"username": "too short",
		"email":    "invalid email format",
	}
	// Fields are reported in stable alphabetical order.
	assert.Equal(t, "email: invalid email format; username: too short", errs.Error())

	assert.Equal(t, "validation failed", FieldErrors{}.Error())
}
