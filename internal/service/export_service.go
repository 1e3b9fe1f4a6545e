package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
	appErrors "github.com/campora/scs-api/pkg/errors"
	"github.com/campora/scs-api/pkg/export"
)

type paymentLister interface {
	All(ctx context.Context) ([]models.Payment, error)
}

// ExportService renders the admin payments report.
type ExportService struct {
	payments paymentLister
	pdf      *export.PDFExporter
	csv      *export.CSVExporter
	logger   *zap.Logger
}

// NewExportService creates an instance of ExportService.
func NewExportService(payments paymentLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		payments: payments,
		pdf:      export.NewPDFExporter(),
		csv:      export.NewCSVExporter(),
		logger:   logger,
	}
}

var reportColumns = []string{"Date", "Student", "Class", "Instructor", "Amount", "Transaction"}

// PaymentsReport renders every payment as a PDF (default) or CSV table and
// returns the bytes with their content type.
func (s *ExportService) PaymentsReport(ctx context.Context, format string) ([]byte, string, error) {
	records, err := s.payments.All(ctx)
	if err != nil {
		return nil, "", storeError(err)
	}

	table := export.Table{Columns: reportColumns, Rows: make([]map[string]string, 0, len(records))}
	for _, p := range records {
		table.Rows = append(table.Rows, map[string]string{
			"Date":        p.Date.Format(time.RFC3339),
			"Student":     p.UserEmail,
			"Class":       p.ClassName,
			"Instructor":  p.InstructorEmail,
			"Amount":      strconv.FormatFloat(p.Amount, 'f', 2, 64),
			"Transaction": p.TransactionID,
		})
	}

	switch strings.ToLower(format) {
	case "", "pdf":
		data, err := s.pdf.Render(table, "Payments Report")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render payments report")
		}
		return data, "application/pdf", nil
	case "csv":
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render payments report")
		}
		return data, "text/csv", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported report format")
	}
}
