// Package asset holds the upload plumbing shared by the three asset
// services: multipart form reading, the extension allow-list, and the
// parent-scope ownership check.
package asset

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/storage"
)

// maxUploadMemory bounds how much of a multipart form net/http keeps in
// memory before spilling to temp files.
const maxUploadMemory = 32 << 20

// Upload is one file read out of a multipart request, fully buffered.
type Upload struct {
	Data     []byte
	Filename string
	MimeType string
}

// ReadUpload pulls the "file" part out of a multipart request. The MIME
// type falls back to a guess from the filename extension when the part
// carries no Content-Type.
func ReadUpload(r *http.Request) (*Upload, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, apperr.BadRequest("invalid multipart form: %v", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, apperr.BadRequest("missing file field")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperr.BadRequest("read uploaded file: %v", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}

	return &Upload{Data: data, Filename: header.Filename, MimeType: mimeType}, nil
}

// ValidateExtension checks the filename's trailing dot-suffix against the
// allow-list, case-insensitively, and returns the lowercased extension.
// Runs before any provider call.
func ValidateExtension(filename string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || !slices.Contains(allowed, ext) {
		return "", apperr.BadRequest("file extension not allowed: %q", ext)
	}
	return ext, nil
}

// EnsureParent verifies that folderID appears in the file's parent set.
// Files outside the addressed scope fail with Forbidden, never revealing
// whether the id exists elsewhere.
func EnsureParent(meta *storage.FileMetadata, folderID string) error {
	if slices.Contains(meta.Parents, folderID) {
		return nil
	}
	return apperr.Forbidden("file %s is not in the addressed scope", meta.ID)
}
