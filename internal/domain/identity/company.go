package identity

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BankDetails holds the banking reference data attached to a company or
// organization. Rows are owned by exactly one parent and managed through it.
type BankDetails struct {
	shared.BaseEntity
	Name              string `gorm:"type:varchar(300);not null"`
	Address           string `gorm:"type:text;not null"`
	BankNumber        string `gorm:"type:varchar(100);not null"` // bank identification code
	SettlementAccount string `gorm:"type:varchar(100);not null"`
	Details           string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BankDetails) TableName() string {
	return "bank_details"
}

// NewBankDetails creates a new bank details record
func NewBankDetails(name, address, bankNumber, settlementAccount, details string) *BankDetails {
	return &BankDetails{
		BaseEntity:        shared.NewBaseEntity(),
		Name:              name,
		Address:           address,
		BankNumber:        bankNumber,
		SettlementAccount: settlementAccount,
		Details:           details,
	}
}

// BankDetailsPatch is a sparse update to bank details; nil fields keep the
// current value.
type BankDetailsPatch struct {
	Name              *string
	Address           *string
	BankNumber        *string
	SettlementAccount *string
	Details           *string
}

// Merge returns a copy of the bank details with the patch applied
func (b BankDetails) Merge(patch BankDetailsPatch) BankDetails {
	merged := b
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.BankNumber != nil {
		merged.BankNumber = *patch.BankNumber
	}
	if patch.SettlementAccount != nil {
		merged.SettlementAccount = *patch.SettlementAccount
	}
	if patch.Details != nil {
		merged.Details = *patch.Details
	}
	return merged
}

// Company is the tenant root. Every other domain entity carries its ID and
// is invisible outside of it.
type Company struct {
	shared.BaseEntity
	Name         string       `gorm:"type:varchar(200)"`
	Description  string       `gorm:"type:text"`
	BankDetailID *uuid.UUID   `gorm:"type:uuid"`
	BankDetail   *BankDetails `gorm:"foreignKey:BankDetailID"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company. A company starts empty; name and bank
// details are filled in later through updates.
func NewCompany(name, description string) *Company {
	return &Company{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}
}

// CompanyPatch is a sparse update to a company
type CompanyPatch struct {
	Name        *string
	Description *string
	BankDetail  *BankDetailsPatch
}

// Merge returns a copy of the company with the patch applied. Bank details
// are merged separately by the caller since they live in their own row.
func (c Company) Merge(patch CompanyPatch) Company {
	merged := c
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	return merged
}

// HasBankDetails reports whether the company has banking data on file
func (c *Company) HasBankDetails() bool {
	return c.BankDetailID != nil
}
