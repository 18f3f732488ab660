package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/catalog"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrProductReferenced is returned when deleting a product that payment
// items still reference.
var ErrProductReferenced = shared.NewDomainError("INVALID_STATE", "Product is referenced by payment items and cannot be deleted")

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDForCompany finds a product by ID within a company
func (r *GormProductRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Preload("Category").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAllForCompany lists products of a company
func (r *GormProductRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Scopes(tenant.CompanyScope(companyID))

	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(producer) LIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	if err := applyOrdering(query, filter).
		Preload("Category").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Save persists a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Omit("Category").Save(product).Error
}

// DeleteForCompany removes a product unless payment items reference it
func (r *GormProductRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	referenced, err := r.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrProductReferenced
	}

	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// IsReferenced reports whether any payment item references the product
func (r *GormProductRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&billing.PaymentItem{}).
		Where("product_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
