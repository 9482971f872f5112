package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Message: "room 101 is booked from 2025-01-17",
	}

	assert.Equal(t, "room 101 is booked from 2025-01-17", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("add_nights must be positive")),
			code:    http.StatusBadRequest,
			message: "add_nights must be positive",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("exactly one of new_departure_date or add_nights is required"),
			code:    http.StatusBadRequest,
			message: "exactly one of new_departure_date or add_nights is required",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "unprocessable configuration",
			err:     failure.Unprocessable(errors.New("property p-1 has no valid timezone")),
			code:    http.StatusUnprocessableEntity,
			message: "property p-1 has no valid timezone",
		},
		{
			name:    "not found",
			err:     failure.NotFound("reservation not found"),
			code:    http.StatusNotFound,
			message: "reservation not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("room is not available"),
			code:    http.StatusConflict,
			message: "room is not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.True(t, errors.As(tt.err, &f))
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.Unprocessable(nil))
}

func TestDescribe(t *testing.T) {
	code, msg := failure.Describe(fmt.Errorf("failed to get property: %w", failure.NotFound("property not found")))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "property not found", msg)

	code, msg = failure.Describe(errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal Server Error", msg)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to extend: %w", failure.Unprocessable(errors.New("bad zone"))),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
