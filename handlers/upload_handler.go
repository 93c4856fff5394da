package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/svan-b/economic-indicators-dashboard/services"
	"github.com/svan-b/economic-indicators-dashboard/shared"
)

type UploadHandler struct {
	Service *services.UploadService
	Limiter *shared.UploadRateLimiter
}

func NewUploadHandler(service *services.UploadService, limiter *shared.UploadRateLimiter) *UploadHandler {
	return &UploadHandler{Service: service, Limiter: limiter}
}

// UploadSpreadsheet accepts an .xlsx/.xls file from the "file" form field.
// The content is validated, read, and discarded; the response carries a
// receipt only.
func (h *UploadHandler) UploadSpreadsheet(c *fiber.Ctx) error {
	if !h.Limiter.Allow() {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success": false,
			"error":   "upload rate limit exceeded, try again shortly",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "missing file upload in \"file\" form field",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	defer file.Close()

	receipt, err := h.Service.AcceptSpreadsheet(fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    receipt,
	})
}
