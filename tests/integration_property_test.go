package tests

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/svan-b/economic-indicators-dashboard/models"
	"github.com/svan-b/economic-indicators-dashboard/services"
)

// TestTrendChartLineCountProperty checks that the trend chart renders exactly
// one line per selected commodity for every subset of the tracked names, and
// the warning for the empty subset.
func TestTrendChartLineCountProperty(t *testing.T) {
	chartService := services.NewChartService()
	dataset := services.BuildDataset()
	columns := dataset.TimeSeries.Columns

	properties := gopter.NewProperties(nil)

	properties.Property("one line per selected commodity, warning when empty", prop.ForAll(
		func(mask int) bool {
			var selected []string
			for i, name := range columns {
				if mask&(1<<i) != 0 {
					selected = append(selected, name)
				}
			}

			chart, warning, err := chartService.BuildTrendChart(dataset.TimeSeries, selected)
			if err != nil {
				t.Logf("unexpected error for selection %v: %v", selected, err)
				return false
			}

			if len(selected) == 0 {
				return chart == nil && warning == services.EmptySelectionWarning
			}
			if chart == nil || warning != "" {
				return false
			}
			if len(chart.Series) != len(selected) {
				return false
			}
			for _, line := range chart.Series {
				if len(line.Points) != len(dataset.TimeSeries.Rows) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 31),
	))

	properties.TestingRun(t)
}

// TestMetricsGridWrappingProperty checks that the grid always holds one card
// per entry and wraps rows at three columns.
func TestMetricsGridWrappingProperty(t *testing.T) {
	panelService := services.NewPanelService()

	properties := gopter.NewProperties(nil)

	properties.Property("card count equals entry count and rows wrap at three", prop.ForAll(
		func(count int) bool {
			collection := models.NewMetricCollection()
			for i := 0; i < count; i++ {
				collection.Add(models.MetricEntry{
					Name:   fmt.Sprintf("Indicator %d", i),
					Value:  float64(i) * 1.5,
					Change: float64(i) - 3,
					Period: "vs 2024",
				})
			}

			grid := panelService.BuildMetricsGrid(collection)
			if len(grid.Cards) != count {
				return false
			}
			if grid.Rows != (count+2)/3 {
				return false
			}
			for i, card := range grid.Cards {
				if card.Row != i/3 || card.Column != i%3 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 30),
	))

	properties.TestingRun(t)
}

// TestCSVRoundTripProperty checks that exporting any time series and parsing
// it back preserves row count, column names, and values.
func TestCSVRoundTripProperty(t *testing.T) {
	exportService := services.NewExportService()

	properties := gopter.NewProperties(nil)

	properties.Property("export then parse preserves the series", prop.ForAll(
		func(values []float64) bool {
			start := time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)
			rows := make([]models.TimeSeriesRow, len(values))
			for i, value := range values {
				rows[i] = models.TimeSeriesRow{
					Date:   start.AddDate(0, i, 0),
					Values: []float64{value, value / 2},
				}
			}
			series := models.TimeSeries{
				Columns: []string{"Steel Price", "Oil Price"},
				Rows:    rows,
			}

			var buf bytes.Buffer
			if err := exportService.WriteTimeSeriesCSV(&buf, series); err != nil {
				return false
			}

			records, err := csv.NewReader(&buf).ReadAll()
			if err != nil {
				return false
			}
			if len(records) != len(rows)+1 {
				return false
			}
			if strings.Join(records[0], ",") != "Date,Steel Price,Oil Price" {
				return false
			}
			for i, row := range rows {
				for j, want := range row.Values {
					parsed, err := strconv.ParseFloat(records[i+1][j+1], 64)
					if err != nil || parsed != want {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(-1e6, 1e6)),
	))

	properties.TestingRun(t)
}

// TestMetricDeltaFormattingProperty checks that every delta renders as a
// signed two-decimal percent that parses back to the change value.
func TestMetricDeltaFormattingProperty(t *testing.T) {
	panelService := services.NewPanelService()

	properties := gopter.NewProperties(nil)

	properties.Property("delta is a signed two-decimal percent", prop.ForAll(
		func(change float64) bool {
			collection := models.NewMetricCollection()
			collection.Add(models.MetricEntry{Name: "Probe", Value: 1, Change: change, Period: "vs 2024"})

			grid := panelService.BuildMetricsGrid(collection)
			delta := grid.Cards[0].Delta
			if !strings.HasSuffix(delta, "%") {
				return false
			}

			parsed, err := strconv.ParseFloat(strings.TrimSuffix(delta, "%"), 64)
			if err != nil {
				return false
			}
			return math.Abs(parsed-change) <= 0.005+1e-9
		},
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t)
}
