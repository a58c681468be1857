package enrollmentController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	"github.com/AliEmadEldin/SpaceCourseSystem/utils"
)

type Controller struct {
	Store store.Storage
}

func New(s store.Storage) *Controller {
	return &Controller{Store: s}
}

// Enroll creates the (user, course) enrollment for the authenticated user.
func (ctrl *Controller) Enroll(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "No token provided")
	}

	reqData := new(struct {
		CourseID uint `json:"courseId"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.CourseID == 0 {
		return middleware.Message(c, fiber.StatusBadRequest, "Course ID is required")
	}

	enrollment, err := ctrl.Store.Enroll(identity.ID, reqData.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyEnrolled):
			return middleware.Message(c, fiber.StatusBadRequest, "User is already enrolled in this course")
		case errors.Is(err, store.ErrCourseNotFound):
			return middleware.Message(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error enrolling user %d in course %d: %v", identity.ID, reqData.CourseID, err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to enroll in course")
	}

	go ctrl.sendConfirmation(identity.ID, reqData.CourseID)

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// MyCourses lists the courses the authenticated user is enrolled in.
func (ctrl *Controller) MyCourses(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "No token provided")
	}

	courses, err := ctrl.Store.ListEnrolledCourses(identity.ID)
	if err != nil {
		log.Printf("Error listing enrolled courses: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch enrolled courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return c.JSON(courses)
}

func (ctrl *Controller) sendConfirmation(userID, courseID uint) {
	user, err := ctrl.Store.GetUser(userID)
	if err != nil {
		return
	}
	course, err := ctrl.Store.GetCourse(courseID)
	if err != nil {
		return
	}
	utils.SendEnrollmentEmail(user.Email, course.Title)
}
