package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMaxImage = 1024
	testMaxVideo = 4096
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := NewStore(dir)
	handler := NewHandler(NewService(store, testMaxImage, testMaxVideo))

	router := gin.New()
	group := router.Group("/api/v1")
	RegisterRoutes(group, handler)

	return router, dir
}

func multipartBody(t *testing.T, field, filename string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postUpload(router *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadImage(t *testing.T) {
	router, dir := setupRouter(t)

	body, contentType := multipartBody(t, "images", "photo.jpg", 100)
	w := postUpload(router, "/api/v1/rooms/upload-image", body, contentType)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "room-img-")
	assert.Contains(t, w.Body.String(), "Image uploaded successfully")

	// The blob landed on disk under the generated name.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name := entries[0].Name()
	assert.True(t, strings.HasPrefix(name, "room-img-"))
	assert.Equal(t, ".jpg", filepath.Ext(name))
}

func TestUploadVideo(t *testing.T) {
	router, _ := setupRouter(t)

	body, contentType := multipartBody(t, "videos", "tour.mp4", 2048)
	w := postUpload(router, "/api/v1/rooms/upload-video", body, contentType)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "room-vid-")
	assert.Contains(t, w.Body.String(), "Video uploaded successfully")
}

func TestUploadImageTooLarge(t *testing.T) {
	router, dir := setupRouter(t)

	body, contentType := multipartBody(t, "images", "big.jpg", testMaxImage+1)
	w := postUpload(router, "/api/v1/rooms/upload-image", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "maximum allowed size")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadVideoCeilingIsSeparate(t *testing.T) {
	router, _ := setupRouter(t)

	// Larger than the image ceiling, still under the video ceiling.
	body, contentType := multipartBody(t, "videos", "tour.mov", testMaxImage+512)
	w := postUpload(router, "/api/v1/rooms/upload-video", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestUploadRejectsWrongExtension(t *testing.T) {
	router, _ := setupRouter(t)

	body, contentType := multipartBody(t, "images", "notes.pdf", 100)
	w := postUpload(router, "/api/v1/rooms/upload-image", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = multipartBody(t, "videos", "photo.jpg", 100)
	w = postUpload(router, "/api/v1/rooms/upload-video", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadWithoutFile(t *testing.T) {
	router, _ := setupRouter(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	resp := postUpload(router, "/api/v1/rooms/upload-image", &buf, w.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestStoreRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	path := filepath.Join(dir, "room-img-test.jpg")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	require.True(t, store.Exists("room-img-test.jpg"))

	require.NoError(t, store.Remove("room-img-test.jpg"))
	assert.False(t, store.Exists("room-img-test.jpg"))

	// Removing a missing blob is not an error.
	require.NoError(t, store.Remove("room-img-test.jpg"))
}
