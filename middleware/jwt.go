package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/services"
)

// Message writes the uniform error body used across the API.
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"message": message})
}

// JWTMiddleware authenticates the request from the Authorization header and
// binds the decoded identity to the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return Message(c, fiber.StatusUnauthorized, "No token provided")
	}

	identity, err := services.VerifyToken(authHeader[len("Bearer "):])
	if err != nil {
		return Message(c, fiber.StatusUnauthorized, "Invalid token")
	}

	c.Locals("userId", identity.ID)
	c.Locals("role", identity.Role)
	return c.Next()
}

// CurrentIdentity returns the identity bound by JWTMiddleware.
func CurrentIdentity(c *fiber.Ctx) (services.Identity, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return services.Identity{}, false
	}
	role, ok := c.Locals("role").(models.Role)
	if !ok {
		return services.Identity{}, false
	}
	return services.Identity{ID: userID, Role: role}, true
}

// RequireRole admits only identities with exactly the given role.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return Message(c, fiber.StatusUnauthorized, "No token provided")
		}
		if identity.Role != role {
			return Message(c, fiber.StatusForbidden, "Insufficient permissions")
		}
		return c.Next()
	}
}

// RequireAdmin admits admins and superadmins; used by user management.
func RequireAdmin(c *fiber.Ctx) error {
	identity, ok := CurrentIdentity(c)
	if !ok {
		return Message(c, fiber.StatusUnauthorized, "No token provided")
	}
	if !identity.Role.IsAdmin() {
		return Message(c, fiber.StatusForbidden, "Access denied. Admin privileges required.")
	}
	return c.Next()
}
