package services

import (
	"time"

	"github.com/svan-b/economic-indicators-dashboard/models"
)

// Dataset bundles every collection the dashboard renders. All collections are
// fully populated at construction; no entry is ever partial or nil.
type Dataset struct {
	Metrics    *models.MetricCollection `json:"-"`
	TimeSeries models.TimeSeries        `json:"time_series"`
	Pmi        []models.PmiRow          `json:"pmi"`
	Forecast   []models.ForecastRow     `json:"forecast"`
	Equipment  []models.EquipmentRow    `json:"equipment"`
}

// TimeSeriesColumns is the fixed commodity column order, which also fixes the
// CSV export header order.
var TimeSeriesColumns = []string{
	"Steel Price",
	"Oil Price",
	"Supply Chain Index",
	"Freight Rate",
	"Grinding Media",
}

func monthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// BuildDataset produces the static indicator dataset. It is a pure function:
// no inputs, deterministic output, no failure modes. Placeholder values stand
// in until a real feed replaces them.
func BuildDataset() *Dataset {
	metrics := models.NewMetricCollection()
	metrics.Add(models.MetricEntry{Name: "Steel Price", Value: 342.17, Change: 0.93, Period: "vs Q4 2024"})
	metrics.Add(models.MetricEntry{Name: "Oil Price (WTI)", Value: 78.45, Change: -1.2, Period: "vs Q4 2024"})
	metrics.Add(models.MetricEntry{Name: "Freight Rate Index", Value: 112.47, Change: -5.0, Period: "Semi-Annual"})
	metrics.Add(models.MetricEntry{Name: "Grinding Media Index", Value: 121.33, Change: 0.40, Period: "vs 2024"})
	metrics.Add(models.MetricEntry{Name: "Equipment Index", Value: 146.52, Change: 9.01, Period: "vs 2024"})
	metrics.Add(models.MetricEntry{Name: "Supply Chain Pressure", Value: 98.72, Change: -0.81, Period: "vs Q4 2024"})

	dates := []time.Time{
		monthEnd(2024, time.October),
		monthEnd(2024, time.November),
		monthEnd(2024, time.December),
		monthEnd(2025, time.January),
		monthEnd(2025, time.February),
		monthEnd(2025, time.March),
	}
	// One value slice per entry of TimeSeriesColumns, in column order.
	columns := [][]float64{
		{330, 335, 338, 340, 342, 345},
		{80, 78, 77, 76, 78, 79},
		{100, 99.5, 99, 98.8, 98.7, 98.5},
		{115, 114, 113, 112.5, 112.4, 112.3},
		{120, 120.5, 120.8, 121, 121.2, 121.4},
	}
	rows := make([]models.TimeSeriesRow, len(dates))
	for i, date := range dates {
		values := make([]float64, len(columns))
		for j := range columns {
			values[j] = columns[j][i]
		}
		rows[i] = models.TimeSeriesRow{Date: date, Values: values}
	}

	pmi := []models.PmiRow{
		{Country: "Canada", ManufacturingPMI: 51.2, InputPricesIndex: 58.3},
		{Country: "US", ManufacturingPMI: 52.7, InputPricesIndex: 57.1},
		{Country: "Peru", ManufacturingPMI: 49.8, InputPricesIndex: 55.9},
		{Country: "Chile", ManufacturingPMI: 50.3, InputPricesIndex: 56.2},
		{Country: "China", ManufacturingPMI: 51.8, InputPricesIndex: 54.7},
	}

	forecast := []models.ForecastRow{
		{Indicator: "Steel Price", Current: 0.93, NextQ: 0.97, FollowingQ: 1.02, Trend: "Increasing"},
		{Indicator: "Oil Price (WTI)", Current: -1.2, NextQ: -0.8, FollowingQ: -0.5, Trend: "Improving"},
		{Indicator: "Freight Rate Index", Current: -5.0, NextQ: -4.5, FollowingQ: -3.8, Trend: "Improving"},
		{Indicator: "Grinding Media Index", Current: 0.40, NextQ: 0.45, FollowingQ: 0.52, Trend: "Slight Increase"},
		{Indicator: "Equipment Index", Current: 9.01, NextQ: 9.2, FollowingQ: 9.3, Trend: "Increasing"},
		{Indicator: "Supply Chain Pressure", Current: -0.81, NextQ: -0.79, FollowingQ: -0.75, Trend: "Improving"},
	}

	equipment := []models.EquipmentRow{
		{Brand: "CAT Equipment", CurrentValue: 146.52, YoYChange: 9.01},
		{Brand: "Komatsu Equipment", CurrentValue: 139.8, YoYChange: 7.2},
		{Brand: "John Deere Equipment", CurrentValue: 142.3, YoYChange: 8.5},
	}

	return &Dataset{
		Metrics: metrics,
		TimeSeries: models.TimeSeries{
			Columns: append([]string(nil), TimeSeriesColumns...),
			Rows:    rows,
		},
		Pmi:       pmi,
		Forecast:  forecast,
		Equipment: equipment,
	}
}
