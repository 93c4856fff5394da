package services

import (
	"time"

	"github.com/svan-b/economic-indicators-dashboard/models"
)

// DefaultCommodities are the trend lines drawn when the client sends no
// selection, matching the original page's default multiselect state.
var DefaultCommodities = []string{"Steel Price", "Oil Price", "Supply Chain Index"}

// DashboardService assembles the full single-page dashboard from the shared
// dataset snapshot.
type DashboardService struct {
	snapshots *SnapshotService
	panels    *PanelService
	charts    *ChartService
	tables    *TableService
}

func NewDashboardService(snapshots *SnapshotService, panels *PanelService, charts *ChartService, tables *TableService) *DashboardService {
	return &DashboardService{
		snapshots: snapshots,
		panels:    panels,
		charts:    charts,
		tables:    tables,
	}
}

// BuildDashboard assembles every panel of the page for one request. The
// period label is echoed back but never windows the series: the original
// page's period control has no wired effect, and that gap is preserved.
func (s *DashboardService) BuildDashboard(selected []string, period string) (*models.Dashboard, error) {
	dataset := s.snapshots.Current()

	trend, warning, err := s.charts.BuildTrendChart(dataset.TimeSeries, selected)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Title:          "Economic Indicators Dashboard",
		Caption:        "Data source: Bloomberg Terminal & BLS",
		LastUpdated:    time.Now().Format("January 2, 2006"),
		Period:         period,
		Metrics:        s.panels.BuildMetricsGrid(dataset.Metrics),
		TrendChart:     trend,
		TrendWarning:   warning,
		EquipmentChart: s.charts.BuildEquipmentChart(dataset.Equipment),
		PmiChart:       s.charts.BuildPmiChart(dataset.Pmi),
		PmiTable:       s.tables.BuildPmiTable(dataset.Pmi),
		ForecastTable:  s.tables.BuildForecastTable(dataset.Forecast),
	}, nil
}

// Dataset exposes the current snapshot for the export and panel endpoints.
func (s *DashboardService) Dataset() *Dataset {
	return s.snapshots.Current()
}
