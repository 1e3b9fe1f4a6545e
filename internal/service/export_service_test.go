package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
	appErrors "github.com/campora/scs-api/pkg/errors"
)

type fixedPaymentLister struct {
	payments []models.Payment
}

func (f *fixedPaymentLister) All(ctx context.Context) ([]models.Payment, error) {
	return f.payments, nil
}

func TestPaymentsReportCSV(t *testing.T) {
	lister := &fixedPaymentLister{payments: []models.Payment{{
		UserEmail:       "ana@example.com",
		InstructorEmail: "bob@example.com",
		ClassName:       "Archery",
		Amount:          49.5,
		TransactionID:   "pi_123",
		Date:            time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}}}
	svc := NewExportService(lister, zap.NewNop())

	data, contentType, err := svc.PaymentsReport(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Student,Class,Instructor,Amount,Transaction", lines[0])
	assert.Contains(t, lines[1], "ana@example.com")
	assert.Contains(t, lines[1], "49.50")
	assert.Contains(t, lines[1], "pi_123")
}

func TestPaymentsReportDefaultsToPDF(t *testing.T) {
	svc := NewExportService(&fixedPaymentLister{}, zap.NewNop())

	data, contentType, err := svc.PaymentsReport(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.NotEmpty(t, data)
}

func TestPaymentsReportRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(&fixedPaymentLister{}, zap.NewNop())

	_, _, err := svc.PaymentsReport(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
