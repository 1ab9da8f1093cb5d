package api

import (
	"bytes"
	"errors"

	"github.com/andikahakim/royba/internal/services"
	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportMonth streams one month of attendance as an xlsx download.
func (handler *Handler) ExportMonth(c *fiber.Ctx) error {
	monthKey := c.Params("month")
	language := c.Query("lang", handler.language)

	var buffer bytes.Buffer
	if err := handler.export.WriteMonthly(&buffer, monthKey, language); err != nil {
		if errors.Is(err, services.ErrInvalidMonthKey) {
			return apiError(c, fiber.StatusBadRequest, "invalid month, expected YYYY-MM")
		}
		return apiError(c, fiber.StatusInternalServerError, "export failed")
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+handler.export.Filename(monthKey)+`"`)
	return c.Send(buffer.Bytes())
}
