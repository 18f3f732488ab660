package billing

import (
	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Organization is a counterparty a company issues invoices to
type Organization struct {
	shared.CompanyEntity
	Name         string                `gorm:"type:varchar(300);not null"`
	TaxesNumber  string                `gorm:"type:varchar(100);not null"` // payer registration number
	Address      string                `gorm:"type:text;not null"`
	PhoneNumber  string                `gorm:"type:varchar(50);not null"`
	Email        string                `gorm:"type:varchar(200);not null"`
	Description  string                `gorm:"type:text"`
	BankDetailID *uuid.UUID            `gorm:"type:uuid"`
	BankDetail   *identity.BankDetails `gorm:"foreignKey:BankDetailID"`
}

// TableName returns the table name for GORM
func (Organization) TableName() string {
	return "organizations"
}

// NewOrganization creates a new organization
func NewOrganization(companyID uuid.UUID, name, taxesNumber, address, phoneNumber, email, description string) (*Organization, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Organization name cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Organization email cannot be empty")
	}
	return &Organization{
		CompanyEntity: shared.NewCompanyEntity(companyID),
		Name:          name,
		TaxesNumber:   taxesNumber,
		Address:       address,
		PhoneNumber:   phoneNumber,
		Email:         email,
		Description:   description,
	}, nil
}

// OrganizationPatch is a sparse update to an organization
type OrganizationPatch struct {
	Name        *string
	TaxesNumber *string
	Address     *string
	PhoneNumber *string
	Email       *string
	Description *string
	BankDetail  *identity.BankDetailsPatch
}

// Merge returns a copy of the organization with the patch applied. Bank
// details are merged by the caller since they live in their own row.
func (o Organization) Merge(patch OrganizationPatch) Organization {
	merged := o
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.TaxesNumber != nil {
		merged.TaxesNumber = *patch.TaxesNumber
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.PhoneNumber != nil {
		merged.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	return merged
}

// BelongsTo reports whether the organization belongs to the given company
func (o *Organization) BelongsTo(companyID uuid.UUID) bool {
	return o.CompanyID == companyID
}
