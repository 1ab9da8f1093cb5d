package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	user := currentUser(c)
	if user.IsManager() {
		notifications, err := handler.notifications.ListForManager()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "load notifications failed")
		}
		return c.JSON(notifications)
	}

	notifications, err := handler.notifications.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load notifications failed")
	}
	return c.JSON(notifications)
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	notification, found, err := handler.notifications.MarkRead(c.Params("notificationID"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "mark notification failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "notification not found")
	}
	return c.JSON(notification)
}
