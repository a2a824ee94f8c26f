// Package response provides shared JSON response helpers for HTTP handlers
// and the single place where error kinds become HTTP status codes.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/storage"
)

// FileCreated is the body returned after an upload.
type FileCreated struct {
	Message string `json:"message"`
	FileID  string `json:"file_id"`
}

// FileReplaced is the body returned after a replace.
type FileReplaced struct {
	Message   string `json:"message"`
	NewFileID string `json:"new_file_id"`
}

// FileList is the body returned by the listing endpoints.
type FileList struct {
	Images []storage.FileInfo `json:"images"`
}

// Message is the body for operations that return no data.
type Message struct {
	Message string `json:"message"`
}

// ErrorBody is the body for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with the payload.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// Error writes an error response with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden writes a 403 response.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// FromError translates a kind-tagged error into the matching status code.
// Untagged errors and upstream failures surface as 500 with the message
// embedded; nothing is swallowed or retried.
func FromError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthorized:
		Unauthorized(w, err.Error())
	case apperr.KindBadRequest:
		BadRequest(w, err.Error())
	case apperr.KindForbidden:
		Forbidden(w, err.Error())
	case apperr.KindNotFound:
		NotFound(w, err.Error())
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}
