package userValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
)

var validate = validator.New()

// UpdateUserPayload is the admin patch for a user; nil fields are untouched.
type UpdateUserPayload struct {
	Email    *string      `json:"email" validate:"omitempty,email"`
	Password *string      `json:"password" validate:"omitempty,min=6"`
	Role     *models.Role `json:"role"`
}

// UpdateUser validator middleware
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid user data")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid user data")
		}
		if reqData.Role != nil && !reqData.Role.Valid() {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid user data")
		}

		c.Locals("validatedUserPatch", reqData)
		return c.Next()
	}
}
