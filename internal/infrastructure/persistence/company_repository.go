package persistence

import (
	"context"
	"errors"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCompanyRepository implements identity.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID, preloading bank details
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	var company identity.Company
	if err := r.db.WithContext(ctx).
		Preload("BankDetail").
		First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// Save persists a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// CreateWithManager persists a new company together with its first employee
// in one transaction. A failed employee insert rolls the company back.
func (r *GormCompanyRepository) CreateWithManager(ctx context.Context, company *identity.Company, manager *identity.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		return tx.Create(manager).Error
	})
}

// SaveWithBankDetails persists the company and its bank details in one
// transaction.
func (r *GormCompanyRepository) SaveWithBankDetails(ctx context.Context, company *identity.Company, details *identity.BankDetails) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if details != nil {
			if err := tx.Save(details).Error; err != nil {
				return err
			}
			company.BankDetailID = &details.ID
		}
		// Avoid gorm upserting the association a second time
		return tx.Omit("BankDetail").Save(company).Error
	})
}

// Delete removes a company by ID
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
