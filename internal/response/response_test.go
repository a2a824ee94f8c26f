package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/response"
)

func TestOK(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.OK(w, response.FileCreated{Message: "uploaded", FileID: "f-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"uploaded","file_id":"f-1"}`, w.Body.String())
}

func TestFromErrorStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unauthorized", apperr.Unauthorized("bad token"), http.StatusUnauthorized},
		{"bad request", apperr.BadRequest("bad extension"), http.StatusBadRequest},
		{"forbidden", apperr.Forbidden("wrong scope"), http.StatusForbidden},
		{"not found", apperr.NotFound("no such file"), http.StatusNotFound},
		{"upstream", apperr.Upstream(errors.New("quota exceeded"), "upload"), http.StatusInternalServerError},
		{"untagged", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			response.FromError(w, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

// Upstream failures surface with the provider message embedded; nothing is
// swallowed behind a generic body.
func TestFromErrorEmbedsUpstreamMessage(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.FromError(w, apperr.Upstream(errors.New("quota exceeded"), "upload %q", "a.png"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"upload \"a.png\": quota exceeded"}`, w.Body.String())
}
