package uploadController

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliEmadEldin/SpaceCourseSystem/config"
	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/services"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
)

// fakeUploader records uploads so tests can assert storage was (not) hit.
type fakeUploader struct {
	keys []string
}

func (f *fakeUploader) Upload(key, contentType string, data []byte) (string, error) {
	f.keys = append(f.keys, key)
	return "https://cdn.example/" + key, nil
}

func setupApp(t *testing.T) (*fiber.App, *store.MemStore, *fakeUploader) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, TokenTTL: 60}

	s := store.NewMemStore()
	uploader := &fakeUploader{}
	ctrl := New(s, uploader)

	app := fiber.New()
	app.Post("/upload/:courseId",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor),
		ctrl.Upload,
	)
	return app, s, uploader
}

func uploadRequest(t *testing.T, path, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	token, err := services.GenerateToken(1, models.RoleInstructor)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

var pdfSample = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF")

func TestUploadCreatesContentRecord(t *testing.T) {
	app, s, uploader := setupApp(t)
	course := &models.Course{Title: "Space Flight"}
	require.NoError(t, s.CreateCourse(course))

	resp, err := app.Test(uploadRequest(t, "/upload/1", "syllabus.pdf", pdfSample))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var content models.Content
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&content))
	assert.Equal(t, course.ID, content.CourseID)
	assert.Equal(t, "application/pdf", content.Type)
	require.Len(t, uploader.keys, 1)
	assert.Equal(t, "https://cdn.example/"+uploader.keys[0], content.URL)

	items, err := s.ListCourseContent(course.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUploadRejectsInvalidTypeBeforeStorage(t *testing.T) {
	app, s, uploader := setupApp(t)
	course := &models.Course{Title: "Space Flight"}
	require.NoError(t, s.CreateCourse(course))

	resp, err := app.Test(uploadRequest(t, "/upload/1", "notes.txt", []byte("plain text notes")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errBody struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "Invalid file type", errBody.Message)

	// Rejection happens before any storage write.
	assert.Empty(t, uploader.keys)
	items, err := s.ListCourseContent(course.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUploadMissingCourse(t *testing.T) {
	app, _, uploader := setupApp(t)

	resp, err := app.Test(uploadRequest(t, "/upload/42", "syllabus.pdf", pdfSample))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Empty(t, uploader.keys)
}

func TestUploadRequiresFile(t *testing.T) {
	app, s, _ := setupApp(t)
	require.NoError(t, s.CreateCourse(&models.Course{Title: "Space Flight"}))

	req := httptest.NewRequest(http.MethodPost, "/upload/1", nil)
	token, err := services.GenerateToken(1, models.RoleInstructor)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
