package identity

import (
	"strings"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Employee represents a staff member of a company. Employees authenticate
// with email and password and act as invoice approvers.
type Employee struct {
	shared.CompanyEntity
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
	Position     string `gorm:"type:varchar(100)"`
	IsManager    bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee belonging to a company
func NewEmployee(companyID uuid.UUID, email, passwordHash, position string, isManager bool) (*Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}

	return &Employee{
		CompanyEntity: shared.NewCompanyEntity(companyID),
		Email:         email,
		PasswordHash:  passwordHash,
		Position:      position,
		IsManager:     isManager,
	}, nil
}

// EmployeePatch is a sparse update to an employee
type EmployeePatch struct {
	Position *string
}

// Merge returns a copy of the employee with the patch applied
func (e Employee) Merge(patch EmployeePatch) Employee {
	merged := e
	if patch.Position != nil {
		merged.Position = *patch.Position
	}
	return merged
}

// BelongsTo reports whether the employee belongs to the given company
func (e *Employee) BelongsTo(companyID uuid.UUID) bool {
	return e.CompanyID == companyID
}
