package services

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/svan-b/economic-indicators-dashboard/shared"
)

// UploadReceipt acknowledges an accepted spreadsheet without ingesting it.
type UploadReceipt struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	Message   string `json:"message"`
}

var allowedUploadExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

// UploadService accepts spreadsheet uploads. Content is read and discarded:
// nothing downstream consumes uploads while the dataset is placeholder data,
// so the endpoint is an acknowledged dead end.
type UploadService struct {
	maxSizeBytes   int64
	serviceMetrics *shared.ServiceMetrics
}

func NewUploadService(maxSizeBytes int64) *UploadService {
	return &UploadService{
		maxSizeBytes:   maxSizeBytes,
		serviceMetrics: shared.NewServiceMetrics("Upload_Service"),
	}
}

// AcceptSpreadsheet validates the filename extension and declared size,
// drains the content, and returns a receipt.
func (s *UploadService) AcceptSpreadsheet(filename string, declaredSize int64, content io.Reader) (*UploadReceipt, error) {
	start := time.Now()

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExtensions[ext] {
		s.serviceMetrics.RecordRequest(false, time.Since(start))
		return nil, shared.NewServiceError(
			shared.ErrorCategoryValidation,
			"UNSUPPORTED_FILE_TYPE",
			fmt.Sprintf("unsupported file type %q, expected .xlsx or .xls", ext),
			"Upload_Service",
			"accept_spreadsheet",
			false,
			nil,
		)
	}

	if declaredSize > s.maxSizeBytes {
		s.serviceMetrics.RecordRequest(false, time.Since(start))
		return nil, shared.NewServiceError(
			shared.ErrorCategoryValidation,
			"FILE_TOO_LARGE",
			fmt.Sprintf("file size %d exceeds limit of %d bytes", declaredSize, s.maxSizeBytes),
			"Upload_Service",
			"accept_spreadsheet",
			false,
			nil,
		)
	}

	received, err := io.Copy(io.Discard, io.LimitReader(content, s.maxSizeBytes+1))
	if err != nil {
		s.serviceMetrics.RecordRequest(false, time.Since(start))
		return nil, shared.WrapError(err, shared.ErrorCategoryProcessing, "UPLOAD_READ_FAILED", "Upload_Service", "accept_spreadsheet", true)
	}
	if received > s.maxSizeBytes {
		s.serviceMetrics.RecordRequest(false, time.Since(start))
		return nil, shared.NewServiceError(
			shared.ErrorCategoryValidation,
			"FILE_TOO_LARGE",
			fmt.Sprintf("file content exceeds limit of %d bytes", s.maxSizeBytes),
			"Upload_Service",
			"accept_spreadsheet",
			false,
			nil,
		)
	}

	receipt := &UploadReceipt{
		ID:        uuid.NewString(),
		Filename:  filename,
		SizeBytes: received,
		Message:   "Data file uploaded successfully!",
	}

	logrus.WithFields(logrus.Fields{
		"component":  "UploadService",
		"upload_id":  receipt.ID,
		"filename":   receipt.Filename,
		"size_bytes": receipt.SizeBytes,
	}).Info("Spreadsheet accepted and discarded")

	s.serviceMetrics.RecordRequest(true, time.Since(start))
	return receipt, nil
}

// Metrics exposes the service's request metrics.
func (s *UploadService) Metrics() *shared.ServiceMetrics {
	return s.serviceMetrics
}
