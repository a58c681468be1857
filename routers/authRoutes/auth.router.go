package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "github.com/AliEmadEldin/SpaceCourseSystem/controllers/auth"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	authValidator "github.com/AliEmadEldin/SpaceCourseSystem/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, s store.Storage) {
	ctrl := authController.New(s)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authValidator.Register(), ctrl.Register)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
}
