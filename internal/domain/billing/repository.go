package billing

import (
	"context"
	"time"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceFilter narrows invoice list queries
type InvoiceFilter struct {
	Status     *InvoiceStatus
	Type       *InvoiceType
	PaidAfter  *time.Time
	PaidBefore *time.Time
}

// OrganizationRepository defines persistence operations for organizations
type OrganizationRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Organization, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Organization, int64, error)
	Save(ctx context.Context, organization *Organization) error
	// SaveWithBankDetails persists the organization and its bank details
	// row in one transaction.
	SaveWithBankDetails(ctx context.Context, organization *Organization, details *identity.BankDetails) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Invoice, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter, invFilter InvoiceFilter) ([]Invoice, int64, error)
	// FindReviewQueue lists on_review invoices awaiting the given approver.
	FindReviewQueue(ctx context.Context, companyID, approverID uuid.UUID) ([]Invoice, error)
	// Create persists the invoice header and all payment items atomically.
	Create(ctx context.Context, invoice *Invoice) error
	// UpdateStatus persists status and paid_at together or not at all.
	UpdateStatus(ctx context.Context, invoice *Invoice) error
}
