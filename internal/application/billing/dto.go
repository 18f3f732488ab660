package billing

import (
	"time"

	appidentity "github.com/finvoice/backend/internal/application/identity"
	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Organization DTOs
// =============================================================================

// CreateOrganizationRequest creates a counterparty organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=300"`
	TaxesNumber string `json:"taxes_number" binding:"required,max=100"`
	Address     string `json:"address" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=200"`
	Description string `json:"description"`
}

// UpdateOrganizationRequest is a sparse organization update
type UpdateOrganizationRequest struct {
	Name        *string                               `json:"name" binding:"omitempty,min=1,max=300"`
	TaxesNumber *string                               `json:"taxes_number" binding:"omitempty,max=100"`
	Address     *string                               `json:"address"`
	PhoneNumber *string                               `json:"phone_number" binding:"omitempty,max=50"`
	Email       *string                               `json:"email" binding:"omitempty,email,max=200"`
	Description *string                               `json:"description"`
	BankDetail  *appidentity.UpdateBankDetailsRequest `json:"bank_detail"`
}

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID          uuid.UUID                        `json:"id"`
	Name        string                           `json:"name"`
	TaxesNumber string                           `json:"taxes_number"`
	Address     string                           `json:"address"`
	PhoneNumber string                           `json:"phone_number"`
	Email       string                           `json:"email"`
	Description string                           `json:"description"`
	BankDetail  *appidentity.BankDetailsResponse `json:"bank_detail,omitempty"`
	CreatedAt   time.Time                        `json:"created_at"`
	UpdatedAt   time.Time                        `json:"updated_at"`
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// PaymentItemRequest is one invoice line in a create request. Price carries
// no binding rule: "required" would reject a legitimate zero price, and the
// non-negative check lives in the domain.
type PaymentItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Amount    int             `json:"amount" binding:"required,min=1"`
}

// CreateInvoiceRequest creates an invoice with its line items
type CreateInvoiceRequest struct {
	Type           string               `json:"type" binding:"required,oneof=income cost"`
	PayTo          *time.Time           `json:"pay_to"`
	OrganizationID uuid.UUID            `json:"organization_id" binding:"required"`
	ApproverID     uuid.UUID            `json:"approver_id" binding:"required"`
	PaymentItems   []PaymentItemRequest `json:"payment_items" binding:"required,min=1,dive"`
}

// ChangeStatusRequest requests an invoice lifecycle transition
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=on_review applied paid canceled"`
}

// ListInvoicesQuery narrows the invoice list endpoint
type ListInvoicesQuery struct {
	Status     string     `form:"status" binding:"omitempty,oneof=on_review applied paid canceled"`
	Type       string     `form:"type" binding:"omitempty,oneof=income cost"`
	PaidAfter  *time.Time `form:"paid_after" time_format:"2006-01-02"`
	PaidBefore *time.Time `form:"paid_before" time_format:"2006-01-02"`
}

// PaymentItemResponse represents an invoice line in API responses
type PaymentItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Amount      int             `json:"amount"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID             uuid.UUID             `json:"id"`
	Type           string                `json:"type"`
	Status         string                `json:"status"`
	PayTo          *time.Time            `json:"pay_to,omitempty"`
	PaidAt         *time.Time            `json:"paid_at,omitempty"`
	TotalPrice     decimal.Decimal       `json:"total_price"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	Organization   *OrganizationResponse `json:"organization,omitempty"`
	ApproverID     uuid.UUID             `json:"approver_id"`
	PaymentItems   []PaymentItemResponse `json:"payment_items,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ToOrganizationResponse converts an organization to its response form
func ToOrganizationResponse(organization *billing.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          organization.ID,
		Name:        organization.Name,
		TaxesNumber: organization.TaxesNumber,
		Address:     organization.Address,
		PhoneNumber: organization.PhoneNumber,
		Email:       organization.Email,
		Description: organization.Description,
		BankDetail:  appidentity.ToBankDetailsResponse(organization.BankDetail),
		CreatedAt:   organization.CreatedAt,
		UpdatedAt:   organization.UpdatedAt,
	}
}

// ToInvoiceResponse converts an invoice to its response form
func ToInvoiceResponse(invoice *billing.Invoice) InvoiceResponse {
	response := InvoiceResponse{
		ID:             invoice.ID,
		Type:           string(invoice.Type),
		Status:         string(invoice.Status),
		PayTo:          invoice.PayTo,
		PaidAt:         invoice.PaidAt,
		TotalPrice:     invoice.TotalPrice,
		OrganizationID: invoice.OrganizationID,
		ApproverID:     invoice.ApproverID,
		CreatedAt:      invoice.CreatedAt,
		UpdatedAt:      invoice.UpdatedAt,
	}
	if invoice.Organization != nil {
		organization := ToOrganizationResponse(invoice.Organization)
		response.Organization = &organization
	}
	for i := range invoice.PaymentItems {
		item := &invoice.PaymentItems[i]
		itemResponse := PaymentItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Price:     item.Price,
			Amount:    item.Amount,
		}
		if item.Product != nil {
			itemResponse.ProductName = item.Product.Name
		}
		response.PaymentItems = append(response.PaymentItems, itemResponse)
	}
	return response
}
