package identity

import (
	"context"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	Save(ctx context.Context, company *Company) error
	// CreateWithManager persists a new company together with its first
	// employee in one transaction.
	CreateWithManager(ctx context.Context, company *Company, manager *Employee) error
	// SaveWithBankDetails persists the company and its bank details row in
	// one transaction.
	SaveWithBankDetails(ctx context.Context, company *Company, details *BankDetails) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmployeeRepository defines persistence operations for employees.
// All lookups except FindByEmail take an explicit company ID; FindByEmail
// is the authentication entry point and is not tenant scoped.
type EmployeeRepository interface {
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Employee, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Employee, int64, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, employee *Employee) error
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}
