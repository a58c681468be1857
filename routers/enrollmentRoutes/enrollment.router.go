package enrollmentRoutes

import (
	"github.com/gofiber/fiber/v2"

	enrollmentController "github.com/AliEmadEldin/SpaceCourseSystem/controllers/enrollment"
	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
)

func SetupEnrollmentRoutes(app *fiber.App, s store.Storage) {
	ctrl := enrollmentController.New(s)

	enrollGroup := app.Group("/enrollments", middleware.JWTMiddleware)
	enrollGroup.Post("/", ctrl.Enroll)
	enrollGroup.Get("/my-courses", ctrl.MyCourses)
}
