package catalog

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category groups products and services within a company
type Category struct {
	shared.CompanyEntity
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(companyID uuid.UUID, name string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &Category{
		CompanyEntity: shared.NewCompanyEntity(companyID),
		Name:          name,
	}, nil
}

// CategoryPatch is a sparse update to a category
type CategoryPatch struct {
	Name *string
}

// Merge returns a copy of the category with the patch applied
func (c Category) Merge(patch CategoryPatch) Category {
	merged := c
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	return merged
}
