package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/svan-b/economic-indicators-dashboard/services"
)

type ExportHandler struct {
	Service   *services.ExportService
	Dashboard *services.DashboardService
}

func NewExportHandler(service *services.ExportService, dashboard *services.DashboardService) *ExportHandler {
	return &ExportHandler{Service: service, Dashboard: dashboard}
}

// DownloadTimeSeries streams the time series as a CSV attachment with the
// fixed export filename.
func (h *ExportHandler) DownloadTimeSeries(c *fiber.Ctx) error {
	dataset := h.Dashboard.Dataset()

	var buf bytes.Buffer
	if err := h.Service.WriteTimeSeriesCSV(&buf, dataset.TimeSeries); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, services.ExportMIMEType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", services.ExportFilename))
	return c.Send(buf.Bytes())
}
