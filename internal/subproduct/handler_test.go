package subproduct_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory/drive-gateway/internal/auth"
	"github.com/inventory/drive-gateway/internal/middleware"
	"github.com/inventory/drive-gateway/internal/storage/storagetest"
	"github.com/inventory/drive-gateway/internal/subproduct"
)

const testSecret = "test-secret"

func newRouter(t *testing.T, fake *storagetest.Fake) http.Handler {
	t.Helper()

	handler := subproduct.NewHandler(subproduct.NewService(fake, subproductsRoot, allowed))
	verifier := auth.NewVerifier(testSecret)

	r := chi.NewRouter()
	r.Route("/subproduct/{productID}/{subproductID}", func(r chi.Router) {
		r.Use(middleware.RequireAuth(verifier))
		r.Post("/upload", handler.Upload)
		r.Get("/list", handler.List)
		r.Put("/replace/{fileID}", handler.Replace)
		r.Get("/download/{fileID}", handler.Download)
		r.Delete("/delete/{fileID}", handler.Delete)
	})
	return r
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func doUpload(t *testing.T, router http.Handler, productID, subproductID, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/subproduct/"+productID+"/"+subproductID+"/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearerToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNestedScopeRouting(t *testing.T) {
	t.Parallel()

	fake := storagetest.New()
	router := newRouter(t, fake)

	w := doUpload(t, router, "p1", "s1", "photo.png", []byte("nested"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var uploaded struct {
		FileID string `json:"file_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	require.NotEmpty(t, uploaded.FileID)

	req := httptest.NewRequest(http.MethodGet, "/subproduct/p1/s1/download/"+uploaded.FileID, nil)
	req.Header.Set("Authorization", bearerToken(t))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("nested"), w.Body.Bytes())

	// The same file addressed through a sibling subproduct scope is rejected.
	req = httptest.NewRequest(http.MethodGet, "/subproduct/p1/s2/download/"+uploaded.FileID, nil)
	req.Header.Set("Authorization", bearerToken(t))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListEnvelope(t *testing.T) {
	t.Parallel()

	fake := storagetest.New()
	router := newRouter(t, fake)

	require.Equal(t, http.StatusOK, doUpload(t, router, "p1", "s1", "a.png", []byte("a")).Code)

	req := httptest.NewRequest(http.MethodGet, "/subproduct/p1/s1/list", nil)
	req.Header.Set("Authorization", bearerToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Images []struct {
			Name string `json:"name"`
		} `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Images, 1)
	assert.Equal(t, "a.png", listed.Images[0].Name)
}
