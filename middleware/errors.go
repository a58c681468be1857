package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders Fiber-level errors with the API's {message} body. A
// request body over the configured limit surfaces as the upload size failure
// rather than a bare 413.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if code == fiber.StatusRequestEntityTooLarge {
		return Message(c, fiber.StatusBadRequest, "File too large")
	}
	return Message(c, code, message)
}
