package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrganizationRepository implements billing.OrganizationRepository using GORM
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByIDForCompany finds an organization by ID within a company
func (r *GormOrganizationRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*billing.Organization, error) {
	var organization billing.Organization
	if err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Preload("BankDetail").
		First(&organization, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &organization, nil
}

// FindAllForCompany lists organizations of a company
func (r *GormOrganizationRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]billing.Organization, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&billing.Organization{}).
		Scopes(tenant.CompanyScope(companyID))

	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var organizations []billing.Organization
	if err := applyOrdering(query, filter).
		Preload("BankDetail").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&organizations).Error; err != nil {
		return nil, 0, err
	}
	return organizations, total, nil
}

// Save persists an organization
func (r *GormOrganizationRepository) Save(ctx context.Context, organization *billing.Organization) error {
	return r.db.WithContext(ctx).Omit("BankDetail").Save(organization).Error
}

// SaveWithBankDetails persists the organization and its bank details row in
// one transaction.
func (r *GormOrganizationRepository) SaveWithBankDetails(ctx context.Context, organization *billing.Organization, details *identity.BankDetails) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if details != nil {
			if err := tx.Save(details).Error; err != nil {
				return err
			}
			organization.BankDetailID = &details.ID
		}
		return tx.Omit("BankDetail").Save(organization).Error
	})
}

// DeleteForCompany removes an organization within a company
func (r *GormOrganizationRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&billing.Organization{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
