package persistence

import (
	"context"
	"errors"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByIDForCompany finds an invoice by ID within a company, with items and
// references loaded.
func (r *GormInvoiceRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*billing.Invoice, error) {
	var invoice billing.Invoice
	if err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Preload("Organization").
		Preload("Organization.BankDetail").
		Preload("Approver").
		Preload("PaymentItems").
		Preload("PaymentItems.Product").
		First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAllForCompany lists invoices of a company with optional status, type
// and paid-date narrowing.
func (r *GormInvoiceRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter, invFilter billing.InvoiceFilter) ([]billing.Invoice, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&billing.Invoice{}).
		Scopes(tenant.CompanyScope(companyID))

	if invFilter.Status != nil {
		query = query.Where("status = ?", *invFilter.Status)
	}
	if invFilter.Type != nil {
		query = query.Where("type = ?", *invFilter.Type)
	}
	if invFilter.PaidAfter != nil {
		query = query.Where("paid_at >= ?", *invFilter.PaidAfter)
	}
	if invFilter.PaidBefore != nil {
		query = query.Where("paid_at < ?", *invFilter.PaidBefore)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []billing.Invoice
	if err := applyOrdering(query, filter).
		Preload("Organization").
		Preload("Approver").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// FindReviewQueue lists on_review invoices waiting on the given approver,
// oldest first.
func (r *GormInvoiceRepository) FindReviewQueue(ctx context.Context, companyID, approverID uuid.UUID) ([]billing.Invoice, error) {
	var invoices []billing.Invoice
	if err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Where("status = ? AND approver_id = ?", billing.InvoiceStatusOnReview, approverID).
		Preload("Organization").
		Preload("PaymentItems").
		Order("created_at asc").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Create persists the invoice header and all payment items atomically
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *billing.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := invoice.PaymentItems
		invoice.PaymentItems = nil
		if err := tx.Omit("Organization", "Approver").Create(invoice).Error; err != nil {
			invoice.PaymentItems = items
			return err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		if len(items) > 0 {
			if err := tx.Omit("Product").Create(&items).Error; err != nil {
				invoice.PaymentItems = items
				return err
			}
		}
		invoice.PaymentItems = items
		return nil
	})
}

// UpdateStatus persists status and paid_at together or not at all
func (r *GormInvoiceRepository) UpdateStatus(ctx context.Context, invoice *billing.Invoice) error {
	result := r.db.WithContext(ctx).
		Model(&billing.Invoice{}).
		Scopes(tenant.CompanyScope(invoice.CompanyID)).
		Where("id = ?", invoice.ID).
		Select("status", "paid_at", "updated_at").
		Updates(map[string]interface{}{
			"status":     invoice.Status,
			"paid_at":    invoice.PaidAt,
			"updated_at": invoice.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
