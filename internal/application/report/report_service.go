package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/finvoice/backend/internal/domain/report"
	"github.com/google/uuid"
)

// csvHeader is the column layout of the paid-invoice export
var csvHeader = []string{"id", "Created at", "Pay to", "Paid at", "Total price", "Organization", "Approver position", "Approver email"}

const csvTimeLayout = "2006-01-02 15:04"

// ReportService builds financial projections over paid invoices
type ReportService struct {
	reportRepo report.InvoiceReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.InvoiceReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// DailyStats returns today's paid income and cost totals
func (s *ReportService) DailyStats(ctx context.Context, companyID uuid.UUID) (*report.DailyStats, error) {
	return s.reportRepo.DailyStats(ctx, companyID, time.Now())
}

// RollingStats returns the trailing-year monthly income and cost series
func (s *ReportService) RollingStats(ctx context.Context, companyID uuid.UUID) (*report.InvoiceStats, error) {
	since := time.Now().AddDate(0, 0, -365)
	return s.reportRepo.MonthlySeries(ctx, companyID, since)
}

// ExportCSV renders every paid invoice of the company as UTF-8 CSV with a
// leading byte order mark so spreadsheet tools detect the encoding.
func (s *ReportService) ExportCSV(ctx context.Context, companyID uuid.UUID) ([]byte, error) {
	rows, err := s.reportRepo.PaidInvoiceRows(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			row.ID.String(),
			row.CreatedAt.Format(csvTimeLayout),
			formatOptionalTime(row.PayTo),
			formatOptionalTime(row.PaidAt),
			row.TotalPrice.StringFixed(2),
			row.OrganizationName,
			row.ApproverPosition,
			row.ApproverEmail,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(csvTimeLayout)
}
