package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "wrap nil error",
			originalError:   nil,
			message:         "wrapper message",
			expectedMessage: "wrapper message: <nil>",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
		})
	}
}

func TestWrapError_PreservesChain(t *testing.T) {
	base := NewValidationError("original_text", "", "cannot be empty")
	wrapped := WrapErrorf(base, "failed to compare request %d", 3)

	assert.Equal(t, "failed to compare request 3: validation failed for field 'original_text': cannot be empty (value: )", wrapped.Error())
	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.True(t, IsValidationError(wrapped))
}

func TestNewError(t *testing.T) {
	tests := []struct {
		name            string
		format          string
		args            []interface{}
		expectedMessage string
	}{
		{
			name:            "simple message",
			format:          "simple error message",
			args:            nil,
			expectedMessage: "simple error message",
		},
		{
			name:            "formatted message",
			format:          "error with value: %d",
			args:            []interface{}{42},
			expectedMessage: "error with value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewError(tt.format, tt.args...)
			assert.Error(t, err)
			assert.Equal(t, tt.expectedMessage, err.Error())
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name            string
		field           string
		value           interface{}
		message         string
		expectedMessage string
	}{
		{
			name:            "string field validation",
			field:           "status",
			value:           "bogus",
			message:         "unknown span status",
			expectedMessage: "validation failed for field 'status': unknown span status (value: bogus)",
		},
		{
			name:            "numeric field validation",
			field:           "start",
			value:           -5,
			message:         "must not be negative",
			expectedMessage: "validation failed for field 'start': must not be negative (value: -5)",
		},
		{
			name:            "nil value validation",
			field:           "spans",
			value:           nil,
			message:         "cannot be nil",
			expectedMessage: "validation failed for field 'spans': cannot be nil (value: <nil>)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validationErr := NewValidationError(tt.field, tt.value, tt.message)

			assert.Error(t, validationErr)
			assert.Equal(t, tt.expectedMessage, validationErr.Error())
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.value, validationErr.Value)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name            string
		section         string
		field           string
		reason          string
		expectedMessage string
	}{
		{
			name:            "section and field",
			section:         "comparison_config",
			field:           "max_tokens",
			reason:          "must be positive",
			expectedMessage: "configuration error in section 'comparison_config', field 'max_tokens': must be positive",
		},
		{
			name:            "section only",
			section:         "log_config",
			reason:          "unreadable",
			expectedMessage: "configuration error in section 'log_config': unreadable",
		},
		{
			name:            "reason only",
			reason:          "no config",
			expectedMessage: "configuration error: no config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigurationError(tt.section, tt.field, tt.reason)
			assert.Equal(t, tt.expectedMessage, err.Error())
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		})
	}
}
