package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Kind   string  `json:"content_type" validate:"required,content_type"`
	Teaser string  `form:"teaser" validate:"max=5"`
	Radius float64 `validate:"gte=0"`
}

func TestValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Kind: "PDF", Teaser: "äöüäö"}))

	err := v.Validate(&sample{Kind: "video", Teaser: "too long", Radius: -1})
	require.Error(t, err)

	details := Details(err)
	require.Len(t, details, 3)
	assert.Equal(t, FieldError{Field: "content_type", Rule: "content_type"}, details[0])
	assert.Equal(t, FieldError{Field: "teaser", Rule: "max", Param: "5"}, details[1])
	assert.Equal(t, FieldError{Field: "Radius", Rule: "gte", Param: "0"}, details[2])
}

func TestDetailsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, Details(errors.New("boom")))
	assert.Nil(t, Details(nil))
}
