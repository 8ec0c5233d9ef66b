package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowErrorFormat(t *testing.T) {
	err := NewError(ErrCodeValidation, "description is required")
	assert.Equal(t, "[VALIDATION_ERROR] description is required", err.Error())
}

func TestFlowErrorf(t *testing.T) {
	err := NewErrorf(ErrCodeInternal, "unexpected failure: %v", "boom")
	assert.Equal(t, "[INTERNAL_ERROR] unexpected failure: boom", err.Error())
}

func TestFlowErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewError(ErrCodeRender, "render failed").WithCause(cause)

	assert.ErrorIs(t, err, cause)
}

func TestFlowErrorDetails(t *testing.T) {
	err := NewError(ErrCodeValidation, "bad input").WithDetails(map[string]any{"field": "description"})
	assert.Equal(t, "description", err.Details["field"])
}
