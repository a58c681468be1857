package sessionValidator

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
)

var validate = validator.New()

// CreateSessionPayload is the live-session creation payload.
type CreateSessionPayload struct {
	CourseID   uint      `json:"courseId" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	StartTime  time.Time `json:"startTime" validate:"required"`
	MeetingURL string    `json:"meetingUrl" validate:"required,url"`
}

// CreateSession validator middleware
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSessionPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid session data")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid session data")
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}
