package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodesAndStatuses(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{NotFound("User", nil), "NOT_FOUND", http.StatusNotFound},
		{BadRequest("bad", nil), "BAD_REQUEST", http.StatusBadRequest},
		{Unauthorized("no", nil), "UNAUTHORIZED", http.StatusUnauthorized},
		{Forbidden("no", nil), "FORBIDDEN", http.StatusForbidden},
		{Conflict("username", "john"), "CONFLICT", http.StatusConflict},
		{ServiceUnavailable("later", nil), "SERVICE_UNAVAILABLE", http.StatusServiceUnavailable},
		{Internal("boom", nil), "INTERNAL_ERROR", http.StatusInternalServerError},
		{TooManyRequests("slow down"), "TOO_MANY_REQUESTS", http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.Status)
		assert.True(t, Is(tc.err, tc.code))
	}
}

func TestConflictNamesField(t *testing.T) {
	err := Conflict("email", "john@example.com")
	assert.Contains(t, err.Message, "email")
	assert.Contains(t, err.Message, "john@example.com")
}

func TestIsUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NotFound("Gig", nil))
	assert.True(t, Is(wrapped, "NOT_FOUND"))
	assert.False(t, Is(wrapped, "CONFLICT"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
}
