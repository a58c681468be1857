package userController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/services"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	userValidator "github.com/AliEmadEldin/SpaceCourseSystem/validators/user"
)

type Controller struct {
	Store store.Storage
}

func New(s store.Storage) *Controller {
	return &Controller{Store: s}
}

func (ctrl *Controller) List(c *fiber.Ctx) error {
	users, err := ctrl.Store.ListUsers()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return c.JSON(users)
}

func (ctrl *Controller) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid user id")
	}

	user, err := ctrl.Store.GetUser(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.Message(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return c.JSON(user)
}

func (ctrl *Controller) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid user id")
	}
	reqData := c.Locals("validatedUserPatch").(*userValidator.UpdateUserPayload)

	patch := store.UserPatch{
		Email: reqData.Email,
		Role:  reqData.Role,
	}
	// Plaintext never reaches the store.
	if reqData.Password != nil {
		hashed, err := services.HashPassword(*reqData.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.Message(c, fiber.StatusInternalServerError, "Failed to update user")
		}
		patch.Password = &hashed
	}

	user, err := ctrl.Store.UpdateUser(uint(id), patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return middleware.Message(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, store.ErrEmailTaken):
			return middleware.Message(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("Error updating user: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return c.JSON(user)
}

func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid user id")
	}

	if err := ctrl.Store.DeleteUser(uint(id)); err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
