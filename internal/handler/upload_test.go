package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inventario/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	router := gin.New()
	NewUploadHandler(dir).RegisterRoutes(router.Group(""), middleware.RequireAuth(testSecret))
	return router, dir
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postUpload(router *gin.Engine, body *bytes.Buffer, contentType, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadStoresFileUnderGeneratedName(t *testing.T) {
	router, dir := newUploadRouter(t)
	body, contentType := multipartBody(t, "file", "foto.png", []byte("fake png bytes"))

	w := postUpload(router, body, contentType, authToken(t, "Ana"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			FilePath string `json:"file_path"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, strings.HasPrefix(resp.Data.FilePath, "/files/"))
	assert.True(t, strings.HasSuffix(resp.Data.FilePath, ".png"))
	// The generated name must not reuse the client-provided one
	assert.NotContains(t, resp.Data.FilePath, "foto")

	stored := filepath.Join(dir, strings.TrimPrefix(resp.Data.FilePath, "/files/"))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), content)
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	router, dir := newUploadRouter(t)
	body, contentType := multipartBody(t, "file", "script.sh", []byte("echo hi"))

	w := postUpload(router, body, contentType, authToken(t, "Ana"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tipo de archivo no permitido")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadRejectsMissingFileField(t *testing.T) {
	router, _ := newUploadRouter(t)
	body, contentType := multipartBody(t, "otro", "foto.png", []byte("x"))

	w := postUpload(router, body, contentType, authToken(t, "Ana"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No se envió ningún archivo")
}

func TestUploadRequiresAuth(t *testing.T) {
	router, _ := newUploadRouter(t)
	body, contentType := multipartBody(t, "file", "foto.png", []byte("x"))

	w := postUpload(router, body, contentType, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
