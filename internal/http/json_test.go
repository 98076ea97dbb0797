package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/cenentury0941/ready-api/internal/errors"
)

func TestWriteAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NotFound("Book not found"), http.StatusNotFound, "not_found"},
		{"conflict", apperrors.Conflict("You have already added a note to this book."), http.StatusConflict, "conflict"},
		{"validation", apperrors.ValidationField("qty", "Qty must be a number."), http.StatusBadRequest, "validation"},
		{"forbidden", apperrors.Forbidden("You can only edit your own note."), http.StatusForbidden, "forbidden"},
		{"configuration", apperrors.Configuration("profile directory is not configured"), http.StatusServiceUnavailable, "configuration"},
		{"timeout", apperrors.MapDBError(context.DeadlineExceeded), http.StatusGatewayTimeout, "timeout"},
		{"canceled", apperrors.MapDBError(context.Canceled), statusClientClosedRequest, "canceled"},
		{"bare deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "timeout"},
		{"bare canceled", fmt.Errorf("query: %w", context.Canceled), statusClientClosedRequest, "canceled"},
		{"unknown", errors.New("pool exhausted"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteAppError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"`+tt.wantCode+`"`)
		})
	}
}

func TestWriteAppError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestWriteAppError_IncludesField(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, apperrors.ValidationField("text", "Note text cannot be empty."))

	assert.Contains(t, w.Body.String(), `"field":"text"`)
}
