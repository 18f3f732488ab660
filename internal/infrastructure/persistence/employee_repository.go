package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements identity.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByIDForCompany finds an employee by ID within a company
func (r *GormEmployeeRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*identity.Employee, error) {
	var employee identity.Employee
	if err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindAllForCompany lists employees of a company
func (r *GormEmployeeRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]identity.Employee, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&identity.Employee{}).
		Scopes(tenant.CompanyScope(companyID))

	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(position) LIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []identity.Employee
	if err := applyOrdering(query, filter).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// FindByEmail finds an employee by email across companies.
// This is the authentication entry point; email is globally unique.
func (r *GormEmployeeRepository) FindByEmail(ctx context.Context, email string) (*identity.Employee, error) {
	var employee identity.Employee
	if err := r.db.WithContext(ctx).
		First(&employee, "email = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// ExistsByEmail reports whether an employee with the email exists
func (r *GormEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Employee{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *identity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// DeleteForCompany removes an employee within a company
func (r *GormEmployeeRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Delete(&identity.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
