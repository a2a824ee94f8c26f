package profile_test

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
	"github.com/inventory/drive-gateway/internal/profile"
	"github.com/inventory/drive-gateway/internal/storage/storagetest"
)

const testSecret = "test-secret"

func newRouter(t *testing.T, fake *storagetest.Fake) http.Handler {
	t.Helper()

	handler := profile.NewHandler(profile.NewService(fake, profileFolder, allowed))
	verifier := auth.NewVerifier(testSecret)

	r := chi.NewRouter()
	r.Route("/profile", func(r chi.Router) {
		r.Use(middleware.RequireAuth(verifier))
		r.Post("/", handler.Upload)
		r.Put("/{fileID}", handler.Replace)
		r.Get("/download/{fileID}", handler.Download)
		r.Delete("/delete/{fileID}", handler.Delete)
		r.Get("/{fileID}", handler.Metadata)
	})
	return r
}

func tokenWithSubject(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	if subject != "" {
		claims["sub"] = subject
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func uploadRequest(t *testing.T, filename string, data []byte, token string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/profile/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", token)
	return req
}

func TestUploadAndMetadata(t *testing.T) {
	t.Parallel()

	fake := storagetest.New()
	router := newRouter(t, fake)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "selfie.png", []byte("img"), tokenWithSubject(t, "user-7")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var uploaded struct {
		FileID string `json:"file_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))

	req := httptest.NewRequest(http.MethodGet, "/profile/"+uploaded.FileID, nil)
	req.Header.Set("Authorization", tokenWithSubject(t, "user-7"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var meta struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
	assert.Equal(t, "user-7.png", meta.Name)
}

func TestUploadWithoutSubjectIs400(t *testing.T) {
	t.Parallel()

	fake := storagetest.New()
	router := newRouter(t, fake)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "selfie.png", []byte("img"), tokenWithSubject(t, "")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, fake.UploadCalls)
}

func TestDownloadInline(t *testing.T) {
	t.Parallel()

	fake := storagetest.New()
	router := newRouter(t, fake)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "selfie.png", []byte("picture"), tokenWithSubject(t, "user-7")))
	require.Equal(t, http.StatusOK, w.Code)

	var uploaded struct {
		FileID string `json:"file_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))

	req := httptest.NewRequest(http.MethodGet, "/profile/download/"+uploaded.FileID, nil)
	req.Header.Set("Authorization", tokenWithSubject(t, "user-7"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("picture"), w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
}
