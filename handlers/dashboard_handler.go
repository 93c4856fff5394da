package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/svan-b/economic-indicators-dashboard/services"
	"github.com/svan-b/economic-indicators-dashboard/shared"
)

type DashboardHandler struct {
	Service *services.DashboardService
	Charts  *services.ChartService
	Panels  *services.PanelService
	Tables  *services.TableService
}

func NewDashboardHandler(service *services.DashboardService, charts *services.ChartService, panels *services.PanelService, tables *services.TableService) *DashboardHandler {
	return &DashboardHandler{
		Service: service,
		Charts:  charts,
		Panels:  panels,
		Tables:  tables,
	}
}

// parseCommodities reads the commodities query param. Absent means the
// default selection; present-but-empty means an explicit empty selection,
// which is the warning path.
func parseCommodities(c *fiber.Ctx) []string {
	if !c.Context().QueryArgs().Has("commodities") {
		return append([]string(nil), services.DefaultCommodities...)
	}

	raw := c.Query("commodities")
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	selected := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			selected = append(selected, trimmed)
		}
	}
	return selected
}

func statusForError(err error) int {
	var serviceErr *shared.ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Category == shared.ErrorCategoryValidation {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// GetDashboard returns the full single-page payload.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	selected := parseCommodities(c)
	period := c.Query("period")

	dashboard, err := h.Service.BuildDashboard(selected, period)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dashboard,
	})
}

// GetMetrics returns the key-metrics grid.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	dataset := h.Service.Dataset()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Panels.BuildMetricsGrid(dataset.Metrics),
	})
}

// GetTrends returns the commodity trend line chart, or the warning when the
// selection is empty.
func (h *DashboardHandler) GetTrends(c *fiber.Ctx) error {
	dataset := h.Service.Dataset()
	selected := parseCommodities(c)

	chart, warning, err := h.Charts.BuildTrendChart(dataset.TimeSeries, selected)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	if warning != "" {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    nil,
			"warning": warning,
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    chart,
	})
}

// GetEquipment returns the equipment year-over-year bar chart.
func (h *DashboardHandler) GetEquipment(c *fiber.Ctx) error {
	dataset := h.Service.Dataset()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Charts.BuildEquipmentChart(dataset.Equipment),
	})
}

// GetPmi returns the PMI bar chart together with its verbatim table.
func (h *DashboardHandler) GetPmi(c *fiber.Ctx) error {
	dataset := h.Service.Dataset()
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"chart": h.Charts.BuildPmiChart(dataset.Pmi),
			"table": h.Tables.BuildPmiTable(dataset.Pmi),
		},
	})
}

// GetForecast returns the forecast summary table.
func (h *DashboardHandler) GetForecast(c *fiber.Ctx) error {
	dataset := h.Service.Dataset()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Tables.BuildForecastTable(dataset.Forecast),
	})
}
