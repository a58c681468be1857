package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "github.com/AliEmadEldin/SpaceCourseSystem/controllers/course"
	uploadController "github.com/AliEmadEldin/SpaceCourseSystem/controllers/upload"
	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/services"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	courseValidator "github.com/AliEmadEldin/SpaceCourseSystem/validators/course"
)

// SetupCourseRoutes wires the catalog, content and upload endpoints.
func SetupCourseRoutes(app *fiber.App, s store.Storage, uploader services.ObjectStorage) {
	ctrl := courseController.New(s)
	uploadCtrl := uploadController.New(s, uploader)

	courseGroup := app.Group("/courses", middleware.JWTMiddleware)
	courseGroup.Get("/", courseValidator.CourseList(), ctrl.List)
	courseGroup.Get("/:courseId/content", ctrl.ListContent)
	courseGroup.Get("/:id", ctrl.Get)
	courseGroup.Post("/", middleware.RequireRole(models.RoleInstructor), courseValidator.CreateCourse(), ctrl.Create)
	courseGroup.Put("/:id", middleware.RequireRole(models.RoleInstructor), courseValidator.UpdateCourse(), ctrl.Update)
	courseGroup.Delete("/:id", middleware.RequireRole(models.RoleInstructor), ctrl.Delete)

	app.Post("/upload/:courseId",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor),
		uploadCtrl.Upload,
	)
}
