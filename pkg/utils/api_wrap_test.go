package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", NewValidationError("Please select at least one budget range"), http.StatusBadRequest, "Please select at least one budget range"},
		{"wrapped validation", fmt.Errorf("submit: %w", NewValidationError("bad")), http.StatusBadRequest, "bad"},
		{"bad id", ErrInvalidSolutionID, http.StatusBadRequest, "Invalid solution id"},
		{"not found", ErrSolutionNotFound, http.StatusNotFound, "Solution not found"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "Authentication required"},
		{"database", fmt.Errorf("%w: boom", ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
		{"unknown", errors.New("x"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			assert.Equal(t, tt.code, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestValidationErrorIs(t *testing.T) {
	assert.True(t, errors.Is(NewValidationError("x"), ErrValidation))
}
