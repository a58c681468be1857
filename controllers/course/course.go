package courseController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	courseValidator "github.com/AliEmadEldin/SpaceCourseSystem/validators/course"
)

type Controller struct {
	Store store.Storage
}

func New(s store.Storage) *Controller {
	return &Controller{Store: s}
}

// List returns courses matching the optional title/price filters.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	filter := c.Locals("validatedFilter").(store.CourseFilter)

	courses, err := ctrl.Store.ListCourses(filter)
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return c.JSON(courses)
}

func (ctrl *Controller) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid course id")
	}

	course, err := ctrl.Store.GetCourse(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.Message(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return c.JSON(course)
}

func (ctrl *Controller) Create(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CreateCoursePayload)

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		ImageURL:     reqData.ImageURL,
		Duration:     reqData.Duration,
		Difficulty:   reqData.Difficulty,
		InstructorID: reqData.InstructorID,
		Price:        reqData.Price,
	}
	if err := ctrl.Store.CreateCourse(&course); err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func (ctrl *Controller) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid course id")
	}
	reqData := c.Locals("validatedCoursePatch").(*courseValidator.UpdateCoursePayload)

	course, err := ctrl.Store.UpdateCourse(uint(id), store.CoursePatch{
		Title:        reqData.Title,
		Description:  reqData.Description,
		ImageURL:     reqData.ImageURL,
		Duration:     reqData.Duration,
		Difficulty:   reqData.Difficulty,
		InstructorID: reqData.InstructorID,
		Price:        reqData.Price,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.Message(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error updating course: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return c.JSON(course)
}

// Delete removes a course unconditionally; deleting an absent id succeeds.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid course id")
	}

	if err := ctrl.Store.DeleteCourse(uint(id)); err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListContent returns the uploaded content records for a course.
func (ctrl *Controller) ListContent(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid course id")
	}

	content, err := ctrl.Store.ListCourseContent(uint(courseID))
	if err != nil {
		log.Printf("Error listing course content: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch course content")
	}
	if content == nil {
		content = []models.Content{}
	}
	return c.JSON(content)
}
