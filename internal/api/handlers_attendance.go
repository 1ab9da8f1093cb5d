package api

import (
	"time"

	"github.com/andikahakim/royba/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CheckIn(c *fiber.Ctx) error {
	record, err := handler.attendance.CheckIn(currentUser(c).ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "check-in failed")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) CheckOut(c *fiber.Ctx) error {
	record, found, err := handler.attendance.CheckOut(currentUser(c).ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "check-out failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no check-in recorded for today")
	}
	return c.JSON(record)
}

func (handler *Handler) TodayAttendance(c *fiber.Ctx) error {
	record, found, err := handler.attendance.TodayAttendance(currentUser(c).ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load attendance failed")
	}
	if !found {
		return c.JSON(fiber.Map{"attendance": nil, "shift": services.CurrentShift(time.Now())})
	}
	return c.JSON(fiber.Map{"attendance": record, "shift": services.CurrentShift(time.Now())})
}

func (handler *Handler) AttendanceHistory(c *fiber.Ctx) error {
	user := currentUser(c)
	if user.IsManager() && c.Query("all") == "true" {
		records, err := handler.attendance.ListAll()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "load attendance failed")
		}
		return c.JSON(records)
	}

	records, err := handler.attendance.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load attendance failed")
	}
	return c.JSON(records)
}
