package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"

	"github.com/svan-b/economic-indicators-dashboard/config"
	"github.com/svan-b/economic-indicators-dashboard/handlers"
	"github.com/svan-b/economic-indicators-dashboard/jobs"
	"github.com/svan-b/economic-indicators-dashboard/services"
	"github.com/svan-b/economic-indicators-dashboard/shared"
)

func main() {
	// Load config
	cfg := config.LoadConfig()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		log.Printf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	// Initialize services
	snapshotService := services.NewSnapshotService(cfg.GetSnapshotTTL())
	panelService := services.NewPanelService()
	chartService := services.NewChartService()
	tableService := services.NewTableService()
	exportService := services.NewExportService()
	uploadService := services.NewUploadService(cfg.GetMaxUploadSize())
	dashboardService := services.NewDashboardService(snapshotService, panelService, chartService, tableService)

	uploadLimiter := shared.NewUploadRateLimiter(cfg.GetUploadMinInterval())

	log.Println("Dashboard services initialized:")
	log.Printf("  - Snapshot service (TTL: %v)", cfg.GetSnapshotTTL())
	log.Printf("  - Upload service (max size: %d bytes, min interval: %v)",
		cfg.GetMaxUploadSize(), cfg.GetUploadMinInterval())
	log.Println("  - Panel, chart, table, and export services (static dataset)")

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, chartService, panelService, tableService)
	exportHandler := handlers.NewExportHandler(exportService, dashboardService)
	uploadHandler := handlers.NewUploadHandler(uploadService, uploadLimiter)
	performanceHandler := handlers.NewPerformanceHandler(
		snapshotService, panelService, chartService, exportService, uploadService,
	)

	// Initialize background jobs
	refreshJob := jobs.NewSnapshotRefreshJob(snapshotService)
	cleanupJob := jobs.NewCacheCleanupJob(snapshotService)

	// Warm the snapshot on startup, then keep it fresh in the background
	go func() {
		refreshJob.Run()

		refreshTicker := time.NewTicker(cfg.GetSnapshotTTL())
		cleanupTicker := time.NewTicker(2 * cfg.GetSnapshotTTL())

		for {
			select {
			case <-refreshTicker.C:
				refreshJob.Run()
			case <-cleanupTicker.C:
				cleanupJob.Run()
			}
		}
	}()

	// Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	// Routes
	api := app.Group("/api/v1")

	// Dashboard Routes
	api.Get("/dashboard", dashboardHandler.GetDashboard)
	api.Get("/dashboard/metrics", dashboardHandler.GetMetrics)
	api.Get("/dashboard/trends", dashboardHandler.GetTrends)
	api.Get("/dashboard/equipment", dashboardHandler.GetEquipment)
	api.Get("/dashboard/pmi", dashboardHandler.GetPmi)
	api.Get("/dashboard/forecast", dashboardHandler.GetForecast)

	// Export Route
	api.Get("/export/timeseries", exportHandler.DownloadTimeSeries)

	// Upload Route
	api.Post("/upload", uploadHandler.UploadSpreadsheet)

	// Performance Routes
	perf := api.Group("/performance")
	perf.Get("/metrics", performanceHandler.GetPerformanceMetrics)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
