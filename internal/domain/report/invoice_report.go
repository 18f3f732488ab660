package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyTotals aggregates paid invoices of one type for a single day.
// Price is nil when no invoice matched, mirroring SQL SUM over zero rows.
type DailyTotals struct {
	Price  *decimal.Decimal `json:"price"`
	Amount int64            `json:"amount"`
}

// DailyStats is the current-day income/costs snapshot
type DailyStats struct {
	Income DailyTotals `json:"income"`
	Costs  DailyTotals `json:"costs"`
}

// MonthlyPoint is one month of a rolling aggregate series
type MonthlyPoint struct {
	Month      time.Time       `json:"month"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Count      int64           `json:"counts"`
}

// InvoiceStats carries the trailing 12-month income and cost series
type InvoiceStats struct {
	IncomeData []MonthlyPoint `json:"income_data"`
	CostsData  []MonthlyPoint `json:"costs_data"`
}

// ReportRow is one line of the paid-invoice export
type ReportRow struct {
	ID               uuid.UUID
	CreatedAt        time.Time
	PayTo            *time.Time
	PaidAt           *time.Time
	TotalPrice       decimal.Decimal
	OrganizationName string
	ApproverPosition string
	ApproverEmail    string
}

// InvoiceReportRepository provides read-only projections over paid invoices,
// always scoped to a single company.
type InvoiceReportRepository interface {
	DailyStats(ctx context.Context, companyID uuid.UUID, day time.Time) (*DailyStats, error)
	MonthlySeries(ctx context.Context, companyID uuid.UUID, since time.Time) (*InvoiceStats, error)
	PaidInvoiceRows(ctx context.Context, companyID uuid.UUID) ([]ReportRow, error)
}
