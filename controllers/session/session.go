package sessionController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	sessionValidator "github.com/AliEmadEldin/SpaceCourseSystem/validators/session"
)

type Controller struct {
	Store store.Storage
}

func New(s store.Storage) *Controller {
	return &Controller{Store: s}
}

func (ctrl *Controller) Create(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSession").(*sessionValidator.CreateSessionPayload)

	session := models.LiveSession{
		CourseID:   reqData.CourseID,
		Title:      reqData.Title,
		StartTime:  reqData.StartTime,
		MeetingURL: reqData.MeetingURL,
	}
	if err := ctrl.Store.CreateLiveSession(&session); err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			return middleware.Message(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error creating live session: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to create live session")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (ctrl *Controller) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid session id")
	}

	session, err := ctrl.Store.GetLiveSession(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.Message(c, fiber.StatusNotFound, "Session not found")
		}
		log.Printf("Error fetching session: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}
	return c.JSON(session)
}

// List returns a course's sessions ordered by start time.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	courseID := c.QueryInt("courseId")
	if courseID < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Course ID is required")
	}

	sessions, err := ctrl.Store.ListLiveSessions(uint(courseID))
	if err != nil {
		log.Printf("Error listing sessions: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}
	if sessions == nil {
		sessions = []models.LiveSession{}
	}
	return c.JSON(sessions)
}
