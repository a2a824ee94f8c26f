package asset_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/asset"
	"github.com/inventory/drive-gateway/internal/storage"
)

var allowed = []string{".jpg", ".jpeg", ".png"}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	t.Run("allowed extension", func(t *testing.T) {
		t.Parallel()
		ext, err := asset.ValidateExtension("photo.png", allowed)
		require.NoError(t, err)
		assert.Equal(t, ".png", ext)
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		t.Parallel()
		ext, err := asset.ValidateExtension("PHOTO.JPG", allowed)
		require.NoError(t, err)
		assert.Equal(t, ".jpg", ext)
	})

	t.Run("disallowed extension", func(t *testing.T) {
		t.Parallel()
		_, err := asset.ValidateExtension("malware.exe", allowed)
		require.Error(t, err)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})

	t.Run("no extension", func(t *testing.T) {
		t.Parallel()
		_, err := asset.ValidateExtension("README", allowed)
		require.Error(t, err)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})

	t.Run("only the trailing suffix counts", func(t *testing.T) {
		t.Parallel()
		_, err := asset.ValidateExtension("photo.png.exe", allowed)
		require.Error(t, err)
	})
}

func TestEnsureParent(t *testing.T) {
	t.Parallel()

	meta := &storage.FileMetadata{ID: "f-1", Parents: []string{"folder-a"}}

	assert.NoError(t, asset.EnsureParent(meta, "folder-a"))

	err := asset.EnsureParent(meta, "folder-b")
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func multipartRequest(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestReadUpload(t *testing.T) {
	t.Parallel()

	t.Run("reads data, filename, and content type", func(t *testing.T) {
		t.Parallel()
		req := multipartRequest(t, "photo.png", "image/png", []byte("pngbytes"))

		up, err := asset.ReadUpload(req)
		require.NoError(t, err)
		assert.Equal(t, []byte("pngbytes"), up.Data)
		assert.Equal(t, "photo.png", up.Filename)
		assert.Equal(t, "image/png", up.MimeType)
	})

	t.Run("guesses content type from extension", func(t *testing.T) {
		t.Parallel()
		req := multipartRequest(t, "photo.png", "", []byte("pngbytes"))

		up, err := asset.ReadUpload(req)
		require.NoError(t, err)
		assert.Equal(t, "image/png", up.MimeType)
	})

	t.Run("missing file field", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("other", "value"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		_, err := asset.ReadUpload(req)
		require.Error(t, err)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})

	t.Run("not a multipart body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("plain"))

		_, err := asset.ReadUpload(req)
		require.Error(t, err)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})
}
