package sessionRoutes

import (
	"github.com/gofiber/fiber/v2"

	sessionController "github.com/AliEmadEldin/SpaceCourseSystem/controllers/session"
	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	sessionValidator "github.com/AliEmadEldin/SpaceCourseSystem/validators/session"
)

func SetupSessionRoutes(app *fiber.App, s store.Storage) {
	ctrl := sessionController.New(s)

	sessionGroup := app.Group("/live-sessions", middleware.JWTMiddleware)
	sessionGroup.Post("/", middleware.RequireRole(models.RoleInstructor), sessionValidator.CreateSession(), ctrl.Create)
	sessionGroup.Get("/", ctrl.List)
	sessionGroup.Get("/:id", ctrl.Get)
}
