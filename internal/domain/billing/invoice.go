package billing

import (
	"fmt"
	"time"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceType distinguishes incoming payments from expenses
type InvoiceType string

const (
	InvoiceTypeIncome InvoiceType = "income"
	InvoiceTypeCost   InvoiceType = "cost"
)

// IsValid reports whether the invoice type is a known value
func (t InvoiceType) IsValid() bool {
	return t == InvoiceTypeIncome || t == InvoiceTypeCost
}

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusOnReview InvoiceStatus = "on_review"
	InvoiceStatusApplied  InvoiceStatus = "applied"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
)

// IsValid reports whether the status is a known value
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusOnReview, InvoiceStatusApplied, InvoiceStatusPaid, InvoiceStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCanceled
}

// Invoice is the billing aggregate root. It is created in review, confirmed
// or canceled by its approver, and settled or canceled once applied. Line
// items are immutable after creation.
type Invoice struct {
	shared.CompanyEntity
	Type           InvoiceType       `gorm:"type:varchar(15);not null;default:'income'"`
	Status         InvoiceStatus     `gorm:"type:varchar(20);not null;default:'on_review';index"`
	PayTo          *time.Time        // payment due date
	PaidAt         *time.Time        `gorm:"index"`
	TotalPrice     decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	OrganizationID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Organization   *Organization     `gorm:"foreignKey:OrganizationID"`
	ApproverID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Approver       *identity.Employee `gorm:"foreignKey:ApproverID"`
	PaymentItems   []PaymentItem     `gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice assembles an invoice from validated references and line items.
// The total is computed from the items with exact decimal arithmetic and the
// status is always on_review; callers cannot set either directly.
func NewInvoice(companyID uuid.UUID, invoiceType InvoiceType, payTo *time.Time, organization *Organization, approver *identity.Employee, items []PaymentItem) (*Invoice, error) {
	if !invoiceType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", fmt.Sprintf("Unknown invoice type %q", invoiceType))
	}
	if organization == nil || approver == nil {
		return nil, shared.ErrNotFound
	}
	if !approver.BelongsTo(companyID) {
		return nil, shared.NewValidationError("Approver must belong to the same company")
	}
	if !organization.BelongsTo(companyID) {
		return nil, shared.NewValidationError("Organization must belong to the same company")
	}
	if len(items) == 0 {
		return nil, shared.NewValidationError("Invoice requires at least one payment item")
	}

	invoice := &Invoice{
		CompanyEntity:  shared.NewCompanyEntity(companyID),
		Type:           invoiceType,
		Status:         InvoiceStatusOnReview,
		PayTo:          payTo,
		OrganizationID: organization.ID,
		ApproverID:     approver.ID,
	}

	total := decimal.Zero
	for i := range items {
		items[i].InvoiceID = invoice.ID
		total = total.Add(items[i].Subtotal())
	}
	invoice.PaymentItems = items
	invoice.TotalPrice = total

	return invoice, nil
}

// RequestTransition applies the status engine for a transition requested by
// the given employee. On success the receiver is mutated; persisting the
// change atomically is the caller's responsibility.
//
// Rules:
//   - on_review: only the designated approver may act; targets are applied
//     or canceled.
//   - applied: any employee of the company may act; targets are paid (which
//     stamps paid_at) or canceled.
//   - paid, canceled: terminal, every transition fails.
func (inv *Invoice) RequestTransition(target InvoiceStatus, actor *identity.Employee) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Status cannot be updated to %q", target))
	}

	switch inv.Status {
	case InvoiceStatusOnReview:
		if actor == nil || actor.ID != inv.ApproverID {
			return shared.NewDomainError("FORBIDDEN", "Only the approver may confirm or cancel the invoice")
		}
		if target != InvoiceStatusApplied && target != InvoiceStatusCanceled {
			return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Status cannot be updated to %q", target))
		}
		inv.Status = target

	case InvoiceStatusApplied:
		if target != InvoiceStatusPaid && target != InvoiceStatusCanceled {
			return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Status cannot be updated to %q", target))
		}
		if target == InvoiceStatusPaid {
			now := time.Now()
			inv.PaidAt = &now
		}
		inv.Status = target

	default:
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Status cannot be updated to %q", target))
	}

	inv.UpdatedAt = time.Now()
	return nil
}

// CanBeSentToCustomer reports whether a customer invoice email may be sent.
// Only applied income invoices can be billed to the counterparty.
func (inv *Invoice) CanBeSentToCustomer() bool {
	return inv.Type == InvoiceTypeIncome && inv.Status == InvoiceStatusApplied
}
