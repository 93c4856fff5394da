package services

import (
	"fmt"
	"time"

	"github.com/svan-b/economic-indicators-dashboard/models"
	"github.com/svan-b/economic-indicators-dashboard/shared"
)

// EmptySelectionWarning is shown in place of the trend chart when no
// commodity is selected. This is the system's single conditional branch.
const EmptySelectionWarning = "Please select at least one commodity to display"

// pmiNeutralThreshold is the PMI value separating expansion from contraction.
const pmiNeutralThreshold = 50.0

// ChartService shapes dataset collections into renderable chart specs.
type ChartService struct {
	serviceMetrics *shared.ServiceMetrics
}

func NewChartService() *ChartService {
	return &ChartService{
		serviceMetrics: shared.NewServiceMetrics("Chart_Service"),
	}
}

// BuildTrendChart returns a line chart with one line per selected commodity,
// in selection order. An empty selection yields no chart and the warning text
// instead. A commodity name the series does not track is a validation error.
func (s *ChartService) BuildTrendChart(series models.TimeSeries, selected []string) (*models.LineChart, string, error) {
	start := time.Now()

	if len(selected) == 0 {
		s.serviceMetrics.RecordRequest(true, time.Since(start))
		return nil, EmptySelectionWarning, nil
	}

	lines := make([]models.LineSeries, 0, len(selected))
	for _, name := range selected {
		idx := series.ColumnIndex(name)
		if idx < 0 {
			s.serviceMetrics.RecordRequest(false, time.Since(start))
			return nil, "", shared.NewServiceError(
				shared.ErrorCategoryValidation,
				"UNKNOWN_COMMODITY",
				fmt.Sprintf("unknown commodity %q", name),
				"Chart_Service",
				"build_trend_chart",
				false,
				nil,
			)
		}

		points := make([]models.Point, 0, len(series.Rows))
		for _, row := range series.Rows {
			points = append(points, models.Point{Date: row.Date, Value: row.Values[idx]})
		}
		lines = append(lines, models.LineSeries{Name: name, Points: points})
	}

	chart := &models.LineChart{
		ChartType: "line",
		Title:     "6-Month Commodity Price Trends",
		Series:    lines,
		Legend:    true,
		Grid:      true,
	}

	s.serviceMetrics.RecordRequest(true, time.Since(start))
	return chart, "", nil
}

// BuildEquipmentChart returns the year-over-year bar chart, one bar per
// brand. Non-negative changes are annotated with an explicit "+" prefix;
// negative ones are not.
func (s *ChartService) BuildEquipmentChart(rows []models.EquipmentRow) models.BarChart {
	start := time.Now()

	bars := make([]models.Bar, 0, len(rows))
	for _, row := range rows {
		annotation := fmt.Sprintf("%.1f%%", row.YoYChange)
		if row.YoYChange >= 0 {
			annotation = "+" + annotation
		}
		bars = append(bars, models.Bar{
			Label:      row.Brand,
			Value:      row.YoYChange,
			Annotation: annotation,
		})
	}

	chart := models.BarChart{
		ChartType:  "bar",
		Title:      "Equipment Indices Year-over-Year Changes",
		YAxisLabel: "YoY Change (%)",
		Bars:       bars,
		Grid:       true,
	}

	s.serviceMetrics.RecordRequest(true, time.Since(start))
	return chart
}

// BuildPmiChart returns the input-prices sub-index bar chart, one bar per
// country with a one-decimal value label, plus the reference line at the
// neutral PMI threshold.
func (s *ChartService) BuildPmiChart(rows []models.PmiRow) models.BarChart {
	start := time.Now()

	bars := make([]models.Bar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, models.Bar{
			Label:      row.Country,
			Value:      row.InputPricesIndex,
			Annotation: fmt.Sprintf("%.1f", row.InputPricesIndex),
		})
	}

	reference := pmiNeutralThreshold
	chart := models.BarChart{
		ChartType:     "bar",
		Title:         "Input Prices Sub-index by Country",
		YAxisLabel:    "Index Value",
		Bars:          bars,
		ReferenceLine: &reference,
		Grid:          true,
	}

	s.serviceMetrics.RecordRequest(true, time.Since(start))
	return chart
}

// Metrics exposes the service's request metrics.
func (s *ChartService) Metrics() *shared.ServiceMetrics {
	return s.serviceMetrics
}
