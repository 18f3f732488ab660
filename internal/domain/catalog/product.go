package catalog

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Product represents a good or service a company can bill for
type Product struct {
	shared.CompanyEntity
	Name        string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	Producer    string     `gorm:"type:varchar(200)"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Category    *Category  `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(companyID uuid.UUID, name, description, producer string, categoryID *uuid.UUID) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	return &Product{
		CompanyEntity: shared.NewCompanyEntity(companyID),
		Name:          name,
		Description:   description,
		Producer:      producer,
		CategoryID:    categoryID,
	}, nil
}

// ProductPatch is a sparse update to a product
type ProductPatch struct {
	Name        *string
	Description *string
	Producer    *string
	CategoryID  *uuid.UUID
}

// Merge returns a copy of the product with the patch applied
func (p Product) Merge(patch ProductPatch) Product {
	merged := p
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Producer != nil {
		merged.Producer = *patch.Producer
	}
	if patch.CategoryID != nil {
		merged.CategoryID = patch.CategoryID
	}
	return merged
}

// BelongsTo reports whether the product belongs to the given company
func (p *Product) BelongsTo(companyID uuid.UUID) bool {
	return p.CompanyID == companyID
}
