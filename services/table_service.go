package services

import (
	"strconv"

	"github.com/svan-b/economic-indicators-dashboard/models"
)

// TableService renders dataset collections as verbatim tables. Cell text is
// the shortest decimal form of each value; no rounding or reordering.
type TableService struct{}

func NewTableService() *TableService {
	return &TableService{}
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildPmiTable returns the PMI rows as a table, one row per country.
func (s *TableService) BuildPmiTable(rows []models.PmiRow) models.Table {
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{
			row.Country,
			formatCell(row.ManufacturingPMI),
			formatCell(row.InputPricesIndex),
		})
	}

	return models.Table{
		Title:   "PMI Data Table",
		Columns: []string{"Country", "Manufacturing PMI", "Input Prices Sub-index"},
		Rows:    tableRows,
	}
}

// BuildForecastTable returns the forecast rows as a table, one row per
// indicator. Trend labels pass through untouched; they are free-form text.
func (s *TableService) BuildForecastTable(rows []models.ForecastRow) models.Table {
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{
			row.Indicator,
			formatCell(row.Current),
			formatCell(row.NextQ),
			formatCell(row.FollowingQ),
			row.Trend,
		})
	}

	return models.Table{
		Title:   "Forecast Summary (Next 2 Quarters)",
		Columns: []string{"Indicator", "Current", "Q2 2025 (Forecast)", "Q3 2025 (Forecast)", "Trend"},
		Rows:    tableRows,
	}
}
