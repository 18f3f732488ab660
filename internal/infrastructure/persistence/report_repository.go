package persistence

import (
	"context"
	"time"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvoiceReportRepository implements report.InvoiceReportRepository with
// raw aggregate queries. All projections cover paid invoices only.
type GormInvoiceReportRepository struct {
	db *gorm.DB
}

// NewGormInvoiceReportRepository creates a new GormInvoiceReportRepository
func NewGormInvoiceReportRepository(db *gorm.DB) *GormInvoiceReportRepository {
	return &GormInvoiceReportRepository{db: db}
}

type dailyTotalsRow struct {
	Price  decimal.NullDecimal
	Amount int64
}

// DailyStats aggregates paid income and cost invoices for the given day.
// SUM over zero rows yields NULL, which is surfaced as a nil price.
func (r *GormInvoiceReportRepository) DailyStats(ctx context.Context, companyID uuid.UUID, day time.Time) (*report.DailyStats, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	income, err := r.dailyTotals(ctx, companyID, billing.InvoiceTypeIncome, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	costs, err := r.dailyTotals(ctx, companyID, billing.InvoiceTypeCost, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return &report.DailyStats{Income: *income, Costs: *costs}, nil
}

func (r *GormInvoiceReportRepository) dailyTotals(ctx context.Context, companyID uuid.UUID, invoiceType billing.InvoiceType, from, to time.Time) (*report.DailyTotals, error) {
	var row dailyTotalsRow
	err := r.db.WithContext(ctx).
		Model(&billing.Invoice{}).
		Select("SUM(total_price) AS price, COUNT(*) AS amount").
		Where("company_id = ? AND type = ? AND status = ? AND paid_at >= ? AND paid_at < ?",
			companyID, invoiceType, billing.InvoiceStatusPaid, from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	totals := &report.DailyTotals{Amount: row.Amount}
	if row.Price.Valid {
		totals.Price = &row.Price.Decimal
	}
	return totals, nil
}

type monthlyRow struct {
	Month      time.Time
	TotalPrice decimal.Decimal
	Count      int64
}

// MonthlySeries returns per-month totals of paid invoices since the given
// time, split into income and cost series. Months without invoices are
// absent from the result.
func (r *GormInvoiceReportRepository) MonthlySeries(ctx context.Context, companyID uuid.UUID, since time.Time) (*report.InvoiceStats, error) {
	incomeData, err := r.monthlySeries(ctx, companyID, billing.InvoiceTypeIncome, since)
	if err != nil {
		return nil, err
	}
	costsData, err := r.monthlySeries(ctx, companyID, billing.InvoiceTypeCost, since)
	if err != nil {
		return nil, err
	}
	return &report.InvoiceStats{IncomeData: incomeData, CostsData: costsData}, nil
}

func (r *GormInvoiceReportRepository) monthlySeries(ctx context.Context, companyID uuid.UUID, invoiceType billing.InvoiceType, since time.Time) ([]report.MonthlyPoint, error) {
	var rows []monthlyRow
	err := r.db.WithContext(ctx).
		Model(&billing.Invoice{}).
		Select("date_trunc('month', paid_at) AS month, SUM(total_price) AS total_price, COUNT(*) AS count").
		Where("company_id = ? AND type = ? AND status = ? AND paid_at >= ?",
			companyID, invoiceType, billing.InvoiceStatusPaid, since).
		Group("date_trunc('month', paid_at)").
		Order("month asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]report.MonthlyPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, report.MonthlyPoint{
			Month:      row.Month,
			TotalPrice: row.TotalPrice,
			Count:      row.Count,
		})
	}
	return points, nil
}

// PaidInvoiceRows lists every paid invoice of the company joined with its
// organization and approver, newest first. This feeds the CSV export.
func (r *GormInvoiceReportRepository) PaidInvoiceRows(ctx context.Context, companyID uuid.UUID) ([]report.ReportRow, error) {
	var rows []report.ReportRow
	err := r.db.WithContext(ctx).
		Model(&billing.Invoice{}).
		Select(`invoices.id, invoices.created_at, invoices.pay_to, invoices.paid_at, invoices.total_price,
			organizations.name AS organization_name,
			employees.position AS approver_position,
			employees.email AS approver_email`).
		Joins("JOIN organizations ON organizations.id = invoices.organization_id").
		Joins("JOIN employees ON employees.id = invoices.approver_id").
		Where("invoices.company_id = ? AND invoices.status = ?", companyID, billing.InvoiceStatusPaid).
		Order("invoices.paid_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
