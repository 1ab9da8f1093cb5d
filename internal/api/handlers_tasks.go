package api

import (
	"errors"
	"strings"

	"github.com/andikahakim/royba/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) TodayTasks(c *fiber.Ctx) error {
	bundle, found, err := handler.tasks.TodayTasks(currentUser(c).ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load tasks failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no checklist assigned")
	}
	return c.JSON(bundle)
}

func (handler *Handler) CompleteTask(c *fiber.Ctx) error {
	bundle, found, err := handler.tasks.CompleteTask(currentUser(c).ID, c.Params("taskID"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "complete task failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no checklist assigned")
	}
	return c.JSON(bundle)
}

type updateTaskRequest struct {
	Completed bool   `json:"completed"`
	RequestID string `json:"requestId"`
}

func (handler *Handler) UpdateTaskStatus(c *fiber.Ctx) error {
	var payload updateTaskRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	bundle, found, err := handler.tasks.UpdateTaskStatus(currentUser(c).ID, c.Params("taskID"), payload.Completed, payload.RequestID)
	if err != nil {
		if errors.Is(err, services.ErrEditNotApproved) {
			return apiError(c, fiber.StatusForbidden, "checklist edit requires an approved request")
		}
		return apiError(c, fiber.StatusInternalServerError, "update task failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no checklist assigned")
	}
	return c.JSON(bundle)
}

type taskTemplateRequest struct {
	Title string `json:"title"`
}

func (handler *Handler) AddTaskTemplate(c *fiber.Ctx) error {
	var payload taskTemplateRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(payload.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "task title is required")
	}

	if err := handler.tasks.AddTaskTemplate(strings.TrimSpace(payload.Title)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "add task template failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "ok"})
}
