package catalog

import (
	"context"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Category, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Category, int64, error)
	Save(ctx context.Context, category *Category) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Product, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Product, int64, error)
	Save(ctx context.Context, product *Product) error
	// DeleteForCompany removes a product unless payment items still
	// reference it, in which case it fails with a delete-protect error.
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
}
