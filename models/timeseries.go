package models

import "time"

// TimeSeriesRow is one monthly observation: a date plus one value per tracked
// commodity, in the same order as the parent series' Columns.
type TimeSeriesRow struct {
	Date   time.Time `json:"date"`
	Values []float64 `json:"values"`
}

// TimeSeries is the chronological commodity series. Columns fixes both the
// value order inside each row and the CSV export column order.
type TimeSeries struct {
	Columns []string        `json:"columns"`
	Rows    []TimeSeriesRow `json:"rows"`
}

// ColumnIndex returns the position of a named commodity column, or -1 when
// the series does not track it.
func (ts *TimeSeries) ColumnIndex(name string) int {
	for i, col := range ts.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// ColumnValues returns the chronological values of a named column.
func (ts *TimeSeries) ColumnValues(name string) ([]float64, bool) {
	idx := ts.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]float64, 0, len(ts.Rows))
	for _, row := range ts.Rows {
		values = append(values, row.Values[idx])
	}
	return values, true
}
