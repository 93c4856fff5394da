package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/svan-b/economic-indicators-dashboard/models"
	"github.com/svan-b/economic-indicators-dashboard/shared"
)

const (
	// ExportFilename is the fixed download filename for the time-series CSV.
	ExportFilename = "economic_indicators_timeseries.csv"

	// ExportMIMEType is the content type of the CSV artifact.
	ExportMIMEType = "text/csv"

	exportDateLayout = "2006-01-02"
)

// ExportService serializes the time series as a downloadable CSV artifact.
type ExportService struct {
	serviceMetrics *shared.ServiceMetrics
}

func NewExportService() *ExportService {
	return &ExportService{
		serviceMetrics: shared.NewServiceMetrics("Export_Service"),
	}
}

// WriteTimeSeriesCSV writes the series as comma-separated text: a header row
// of "Date" plus the column names in natural order, then one record per row
// with the date and values in shortest decimal form.
func (s *ExportService) WriteTimeSeriesCSV(w io.Writer, series models.TimeSeries) error {
	start := time.Now()

	writer := csv.NewWriter(w)

	header := make([]string, 0, len(series.Columns)+1)
	header = append(header, "Date")
	header = append(header, series.Columns...)
	if err := writer.Write(header); err != nil {
		s.serviceMetrics.RecordRequest(false, time.Since(start))
		return shared.WrapError(err, shared.ErrorCategoryProcessing, "CSV_WRITE_FAILED", "Export_Service", "write_time_series_csv", false)
	}

	for _, row := range series.Rows {
		record := make([]string, 0, len(row.Values)+1)
		record = append(record, row.Date.Format(exportDateLayout))
		for _, value := range row.Values {
			record = append(record, strconv.FormatFloat(value, 'f', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			s.serviceMetrics.RecordRequest(false, time.Since(start))
			return shared.WrapError(err, shared.ErrorCategoryProcessing, "CSV_WRITE_FAILED", "Export_Service", "write_time_series_csv", false)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		s.serviceMetrics.RecordRequest(false, time.Since(start))
		return shared.WrapError(err, shared.ErrorCategoryProcessing, "CSV_FLUSH_FAILED", "Export_Service", "write_time_series_csv", false)
	}

	s.serviceMetrics.RecordRequest(true, time.Since(start))
	return nil
}

// Metrics exposes the service's request metrics.
func (s *ExportService) Metrics() *shared.ServiceMetrics {
	return s.serviceMetrics
}
