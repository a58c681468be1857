package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userController "github.com/AliEmadEldin/SpaceCourseSystem/controllers/user"
	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	userValidator "github.com/AliEmadEldin/SpaceCourseSystem/validators/user"
)

// SetupUserRoutes wires the admin-only user management endpoints.
func SetupUserRoutes(app *fiber.App, s store.Storage) {
	ctrl := userController.New(s)

	userGroup := app.Group("/users", middleware.JWTMiddleware, middleware.RequireAdmin)
	userGroup.Get("/", ctrl.List)
	userGroup.Get("/:id", ctrl.Get)
	userGroup.Put("/:id", userValidator.UpdateUser(), ctrl.Update)
	userGroup.Delete("/:id", ctrl.Delete)
}
