package uploadController

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/services"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
)

type Controller struct {
	Store    store.Storage
	Uploader services.ObjectStorage
}

func New(s store.Storage, uploader services.ObjectStorage) *Controller {
	return &Controller{Store: s, Uploader: uploader}
}

// Upload validates a multipart file, pushes it to object storage and records
// the resulting Content row. Validation failures never reach storage.
func (ctrl *Controller) Upload(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid course id")
	}

	if _, err := ctrl.Store.GetCourse(uint(courseID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.Message(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.Message(c, fiber.StatusBadRequest, "No file uploaded")
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening upload: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to upload file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Printf("Error reading upload: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	contentType, err := services.ValidateUpload(data, fileHeader.Size)
	if err != nil {
		return middleware.Message(c, fiber.StatusBadRequest, err.Error())
	}

	key := services.ObjectKey(uint(courseID), fileHeader.Filename)
	url, err := ctrl.Uploader.Upload(key, contentType, data)
	if err != nil {
		log.Printf("Error uploading to object storage: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	content := models.Content{
		CourseID: uint(courseID),
		Type:     contentType,
		URL:      url,
	}
	if err := ctrl.Store.AddContent(&content); err != nil {
		log.Printf("Error recording content: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	return c.Status(fiber.StatusCreated).JSON(content)
}
