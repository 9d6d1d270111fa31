package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"recanto/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	err := failure.NotFound("property not found")
	assert.Equal(t, "property not found", err.Error())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: failure.BadRequestFromString("dates unavailable"), want: http.StatusBadRequest},
		{name: "not found", err: failure.NotFound("booking not found"), want: http.StatusNotFound},
		{name: "forbidden", err: failure.Forbidden("not the property owner"), want: http.StatusForbidden},
		{name: "conflict", err: failure.Conflict("booking dates conflict"), want: http.StatusConflict},
		{name: "unauthorized", err: failure.Unauthorized("missing token"), want: http.StatusUnauthorized},
		{name: "plain error defaults to 500", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped failure keeps its code", err: fmt.Errorf("create booking: %w", failure.Conflict("overlap")), want: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	assert.True(t, failure.IsCode(failure.Conflict("overlap"), http.StatusConflict))
	assert.False(t, failure.IsCode(failure.NotFound("x"), http.StatusConflict))
}

func TestBadRequest_NilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
