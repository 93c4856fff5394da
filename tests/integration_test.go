package tests

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svan-b/economic-indicators-dashboard/handlers"
	"github.com/svan-b/economic-indicators-dashboard/models"
	"github.com/svan-b/economic-indicators-dashboard/services"
	"github.com/svan-b/economic-indicators-dashboard/shared"
)

// newDashboardApp assembles the full application the way main does, minus the
// listener and background tickers.
func newDashboardApp() *fiber.App {
	snapshotService := services.NewSnapshotService(time.Hour)
	panelService := services.NewPanelService()
	chartService := services.NewChartService()
	tableService := services.NewTableService()
	exportService := services.NewExportService()
	uploadService := services.NewUploadService(1 << 20)
	dashboardService := services.NewDashboardService(snapshotService, panelService, chartService, tableService)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService, chartService, panelService, tableService)
	exportHandler := handlers.NewExportHandler(exportService, dashboardService)
	uploadHandler := handlers.NewUploadHandler(uploadService, shared.NewUploadRateLimiter(0))
	performanceHandler := handlers.NewPerformanceHandler(snapshotService, panelService, chartService, exportService, uploadService)

	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().Unix()})
	})

	api := app.Group("/api/v1")
	api.Get("/dashboard", dashboardHandler.GetDashboard)
	api.Get("/dashboard/metrics", dashboardHandler.GetMetrics)
	api.Get("/dashboard/trends", dashboardHandler.GetTrends)
	api.Get("/dashboard/equipment", dashboardHandler.GetEquipment)
	api.Get("/dashboard/pmi", dashboardHandler.GetPmi)
	api.Get("/dashboard/forecast", dashboardHandler.GetForecast)
	api.Get("/export/timeseries", exportHandler.DownloadTimeSeries)
	api.Post("/upload", uploadHandler.UploadSpreadsheet)
	api.Get("/performance/metrics", performanceHandler.GetPerformanceMetrics)
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := newDashboardApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestEveryPanelEndpointSucceeds(t *testing.T) {
	app := newDashboardApp()

	endpoints := []string{
		"/api/v1/dashboard",
		"/api/v1/dashboard/metrics",
		"/api/v1/dashboard/trends",
		"/api/v1/dashboard/equipment",
		"/api/v1/dashboard/pmi",
		"/api/v1/dashboard/forecast",
		"/api/v1/performance/metrics",
	}
	for _, endpoint := range endpoints {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, endpoint, nil), 5000)
		require.NoError(t, err, endpoint)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, endpoint)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, endpoint)

		var env struct {
			Success bool `json:"success"`
		}
		require.NoError(t, json.Unmarshal(body, &env), endpoint)
		assert.True(t, env.Success, endpoint)
	}
}

func TestDashboardMatchesPanelEndpoints(t *testing.T) {
	app := newDashboardApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/dashboard", nil), 5000)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Success bool             `json:"success"`
		Data    models.Dashboard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	require.True(t, env.Success)

	dataset := services.BuildDataset()
	assert.Equal(t, dataset.Metrics.Len(), len(env.Data.Metrics.Cards))
	assert.Equal(t, len(dataset.Equipment), len(env.Data.EquipmentChart.Bars))
	assert.Equal(t, len(dataset.Pmi), len(env.Data.PmiChart.Bars))
	assert.Equal(t, len(dataset.Pmi), len(env.Data.PmiTable.Rows))
	assert.Equal(t, len(dataset.Forecast), len(env.Data.ForecastTable.Rows))
}

func TestExportedCSVMatchesDataset(t *testing.T) {
	app := newDashboardApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/export/timeseries", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)

	dataset := services.BuildDataset()
	require.Len(t, records, len(dataset.TimeSeries.Rows)+1)
	assert.Equal(t, append([]string{"Date"}, dataset.TimeSeries.Columns...), records[0])
}
