package api

import (
	"errors"

	"github.com/andikahakim/royba/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.accounts.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load users failed")
	}

	public := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		public = append(public, publicUser(user))
	}
	return c.JSON(public)
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	var payload createUserRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.accounts.CreateUser(payload.Username, payload.Password, payload.Name, payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAccount):
			return apiError(c, fiber.StatusBadRequest, "invalid account input")
		case errors.Is(err, services.ErrUsernameTaken):
			return apiError(c, fiber.StatusConflict, "username already taken")
		default:
			return apiError(c, fiber.StatusInternalServerError, "create user failed")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(publicUser(user))
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	found, err := handler.accounts.DeleteUser(c.Params("userID"))
	if err != nil {
		if errors.Is(err, services.ErrLastManager) {
			return apiError(c, fiber.StatusConflict, "cannot delete the last manager")
		}
		return apiError(c, fiber.StatusInternalServerError, "delete user failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
