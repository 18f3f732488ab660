package identity

import (
	"context"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// EmployeeService handles staff directory operations
type EmployeeService struct {
	employeeRepo identity.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo identity.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// Create adds an employee with the supplied credentials. Unlike InviteStaff
// no invitation mail is sent and the caller picks the password.
func (s *EmployeeService) Create(ctx context.Context, companyID uuid.UUID, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	employee, err := identity.NewEmployee(companyID, req.Email, hash, req.Position, false)
	if err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee within the company
func (s *EmployeeService) GetByID(ctx context.Context, companyID, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List returns a page of the company's employees
func (s *EmployeeService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[EmployeeResponse], error) {
	employees, total, err := s.employeeRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies a sparse update to an employee
func (s *EmployeeService) Update(ctx context.Context, companyID, employeeID uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	merged := employee.Merge(identity.EmployeePatch{Position: req.Position})
	if err := s.employeeRepo.Save(ctx, &merged); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(&merged)
	return &response, nil
}

// Delete removes an employee from the company. Managers cannot be removed.
func (s *EmployeeService) Delete(ctx context.Context, companyID, employeeID uuid.UUID) error {
	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return err
	}
	if employee.IsManager {
		return shared.NewDomainError("FORBIDDEN", "Manager cannot be removed")
	}
	return s.employeeRepo.DeleteForCompany(ctx, companyID, employeeID)
}
