package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/finvoice/backend/internal/domain/catalog"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByIDForCompany finds a category by ID within a company
func (r *GormCategoryRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAllForCompany lists categories of a company
func (r *GormCategoryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]catalog.Category, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&catalog.Category{}).
		Scopes(tenant.CompanyScope(companyID))

	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []catalog.Category
	if err := applyOrdering(query, filter).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Save persists a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteForCompany removes a category within a company
func (r *GormCategoryRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&catalog.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
