package courseValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
)

var validate = validator.New()

// CreateCoursePayload mirrors the insertable course fields. Price and
// instructor are optional.
type CreateCoursePayload struct {
	Title        string   `json:"title" validate:"required,min=3"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     string   `json:"imageUrl" validate:"required,url"`
	Duration     int      `json:"duration" validate:"required,gt=0"`
	Difficulty   string   `json:"difficulty" validate:"required"`
	InstructorID *uint    `json:"instructorId"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
}

// UpdateCoursePayload is the partial patch; nil fields are left untouched.
type UpdateCoursePayload struct {
	Title        *string  `json:"title" validate:"omitempty,min=3"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"imageUrl" validate:"omitempty,url"`
	Duration     *int     `json:"duration" validate:"omitempty,gt=0"`
	Difficulty   *string  `json:"difficulty"`
	InstructorID *uint    `json:"instructorId"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid course data")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid course data")
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid course data")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid course data")
		}

		c.Locals("validatedCoursePatch", reqData)
		return c.Next()
	}
}

// CourseList parses the optional title/minPrice/maxPrice filters.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string   `query:"title"`
			MinPrice *float64 `query:"minPrice"`
			MaxPrice *float64 `query:"maxPrice"`
		})
		if err := c.QueryParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid course filters")
		}

		c.Locals("validatedFilter", store.CourseFilter{
			Title:    reqData.Title,
			MinPrice: reqData.MinPrice,
			MaxPrice: reqData.MaxPrice,
		})
		return c.Next()
	}
}
