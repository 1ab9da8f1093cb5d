package api

import (
	"errors"

	"github.com/andikahakim/royba/internal/services"
	"github.com/gofiber/fiber/v2"
)

type taskEditRequest struct {
	TaskID string `json:"taskId"`
	Reason string `json:"reason"`
}

func (handler *Handler) RequestTaskEdit(c *fiber.Ctx) error {
	var payload taskEditRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.TaskID == "" {
		return apiError(c, fiber.StatusBadRequest, "taskId is required")
	}

	request, err := handler.requests.RequestTaskEdit(currentUser(c).ID, payload.TaskID, payload.Reason)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "create edit request failed")
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

type leaveRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	LeaveType string `json:"leaveType"`
	Message   string `json:"message"`
}

func (handler *Handler) RequestLeave(c *fiber.Ctx) error {
	var payload leaveRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	request, err := handler.requests.RequestLeave(
		currentUser(c).ID, payload.StartDate, payload.EndDate, payload.LeaveType, payload.Message,
	)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLeaveRange) {
			return apiError(c, fiber.StatusBadRequest, "invalid leave date range")
		}
		return apiError(c, fiber.StatusInternalServerError, "create leave request failed")
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (handler *Handler) ListRequests(c *fiber.Ctx) error {
	user := currentUser(c)
	if user.IsManager() {
		requests, err := handler.requests.ListRequests()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "load requests failed")
		}
		return c.JSON(requests)
	}

	requests, err := handler.requests.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load requests failed")
	}
	return c.JSON(requests)
}

type respondRequest struct {
	Approved bool   `json:"approved"`
	Response string `json:"response"`
}

func (handler *Handler) RespondToRequest(c *fiber.Ctx) error {
	var payload respondRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	request, found, err := handler.requests.RespondToRequest(c.Params("requestID"), payload.Approved, payload.Response)
	if err != nil {
		if errors.Is(err, services.ErrRequestResolved) {
			return apiError(c, fiber.StatusConflict, "request already resolved")
		}
		return apiError(c, fiber.StatusInternalServerError, "respond to request failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "request not found")
	}
	return c.JSON(request)
}
