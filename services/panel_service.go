package services

import (
	"fmt"
	"time"

	"github.com/svan-b/economic-indicators-dashboard/models"
	"github.com/svan-b/economic-indicators-dashboard/shared"
)

// metricGridColumns is the fixed column count of the key-metrics grid.
const metricGridColumns = 3

// PanelService shapes metric collections into the key-metrics grid.
type PanelService struct {
	serviceMetrics *shared.ServiceMetrics
}

func NewPanelService() *PanelService {
	return &PanelService{
		serviceMetrics: shared.NewServiceMetrics("Panel_Service"),
	}
}

// BuildMetricsGrid lays out one card per metric entry in insertion order,
// wrapping row-wise across three columns. Values carry two-decimal precision
// and deltas a signed two-decimal percent.
func (s *PanelService) BuildMetricsGrid(collection *models.MetricCollection) models.MetricsGrid {
	start := time.Now()

	entries := collection.Entries()
	cards := make([]models.MetricCard, 0, len(entries))
	for i, entry := range entries {
		cards = append(cards, models.MetricCard{
			Label:  fmt.Sprintf("%s (%s)", entry.Name, entry.Period),
			Value:  fmt.Sprintf("%.2f", entry.Value),
			Delta:  fmt.Sprintf("%.2f%%", entry.Change),
			Row:    i / metricGridColumns,
			Column: i % metricGridColumns,
		})
	}

	grid := models.MetricsGrid{
		Columns: metricGridColumns,
		Rows:    (len(cards) + metricGridColumns - 1) / metricGridColumns,
		Cards:   cards,
	}

	s.serviceMetrics.RecordRequest(true, time.Since(start))
	return grid
}

// Metrics exposes the service's request metrics.
func (s *PanelService) Metrics() *shared.ServiceMetrics {
	return s.serviceMetrics
}
