package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/services"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	"github.com/AliEmadEldin/SpaceCourseSystem/utils"
	authValidator "github.com/AliEmadEldin/SpaceCourseSystem/validators/auth"
)

type Controller struct {
	Store store.Storage
}

func New(s store.Storage) *Controller {
	return &Controller{Store: s}
}

// Register creates a student account and returns a fresh token.
func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCredentials").(*authValidator.Credentials)

	if _, err := ctrl.Store.GetUserByEmail(reqData.Email); err == nil {
		return middleware.Message(c, fiber.StatusBadRequest, "Email already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Error checking existing user: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Registration failed")
	}

	hashed, err := services.HashPassword(reqData.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Registration failed")
	}

	user := models.User{
		Email:    reqData.Email,
		Password: hashed,
		Role:     models.RoleStudent,
	}
	if err := ctrl.Store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return middleware.Message(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("Error saving user: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Registration failed")
	}

	token, err := services.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Registration failed")
	}

	go utils.SendWelcomeEmail(user.Email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

// Login verifies credentials and returns a token.
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCredentials").(*authValidator.Credentials)

	user, err := ctrl.Store.GetUserByEmail(reqData.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.Message(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Login failed")
	}

	if !services.ComparePasswords(reqData.Password, user.Password) {
		return middleware.Message(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := services.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(fiber.Map{"token": token})
}
