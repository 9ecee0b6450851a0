package validation_test

import (
	"testing"

	"inventory/internal/validation"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title  string   `json:"title" validate:"notblank"`
	Amount *float64 `json:"amount" validate:"required,gte=0,whole"`
}

func float(v float64) *float64 { return &v }

func TestValidator_NotBlankAndWhole(t *testing.T) {
	v := validation.New()

	err := v.Struct(sample{Title: "ok", Amount: float(3)})
	assert.NoError(t, err)

	err = v.Struct(sample{Title: "   ", Amount: float(2.5)})
	fields := validation.Messages(err, map[string]string{"title": "Title is required"})
	assert.Equal(t, validation.FieldErrors{
		"title":  "Title is required",
		"amount": "amount is invalid",
	}, fields)
}

func TestValidator_RequiredPointer(t *testing.T) {
	v := validation.New()

	err := v.Struct(sample{Title: "ok"})
	fields := validation.Messages(err, map[string]string{"amount": "Amount is required"})
	assert.Equal(t, validation.FieldErrors{"amount": "Amount is required"}, fields)
}

func TestMessages_NilError(t *testing.T) {
	assert.Nil(t, validation.Messages(nil, nil))
}
