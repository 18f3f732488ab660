package identity

import (
	"time"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// =============================================================================
// Auth DTOs
// =============================================================================

// SignupRequest registers a new company together with its first manager
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	Position string `json:"position" binding:"max=100"`
}

// LoginRequest authenticates an existing employee
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,max=100"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
}

// InviteStaffRequest provisions a new employee with generated credentials
type InviteStaffRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Position string `json:"position" binding:"max=100"`
}

// =============================================================================
// Company DTOs
// =============================================================================

// UpdateCompanyRequest is a sparse company update; absent fields keep their
// current value.
type UpdateCompanyRequest struct {
	Name        *string                   `json:"name" binding:"omitempty,max=200"`
	Description *string                   `json:"description"`
	BankDetail  *UpdateBankDetailsRequest `json:"bank_detail"`
}

// UpdateBankDetailsRequest is a sparse bank details update
type UpdateBankDetailsRequest struct {
	Name              *string `json:"name" binding:"omitempty,max=300"`
	Address           *string `json:"address"`
	BankNumber        *string `json:"bank_number" binding:"omitempty,max=100"`
	SettlementAccount *string `json:"settlement_account" binding:"omitempty,max=100"`
	Details           *string `json:"details"`
}

// BankDetailsResponse represents bank details in API responses
type BankDetailsResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	BankNumber        string    `json:"bank_number"`
	SettlementAccount string    `json:"settlement_account"`
	Details           string    `json:"details"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	BankDetail  *BankDetailsResponse `json:"bank_detail,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// =============================================================================
// Employee DTOs
// =============================================================================

// CreateEmployeeRequest adds an employee with caller-supplied credentials
type CreateEmployeeRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	Position string `json:"position" binding:"max=100"`
}

// UpdateEmployeeRequest is a sparse employee update
type UpdateEmployeeRequest struct {
	Position *string `json:"position" binding:"omitempty,max=100"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	IsManager bool      `json:"is_manager"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBankDetailsResponse converts bank details to its response form
func ToBankDetailsResponse(details *identity.BankDetails) *BankDetailsResponse {
	if details == nil {
		return nil
	}
	return &BankDetailsResponse{
		ID:                details.ID,
		Name:              details.Name,
		Address:           details.Address,
		BankNumber:        details.BankNumber,
		SettlementAccount: details.SettlementAccount,
		Details:           details.Details,
	}
}

// ToCompanyResponse converts a company to its response form
func ToCompanyResponse(company *identity.Company) CompanyResponse {
	return CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		BankDetail:  ToBankDetailsResponse(company.BankDetail),
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}

// ToEmployeeResponse converts an employee to its response form
func ToEmployeeResponse(employee *identity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        employee.ID,
		CompanyID: employee.CompanyID,
		Email:     employee.Email,
		Position:  employee.Position,
		IsManager: employee.IsManager,
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

// toBankDetailsPatch maps the request onto a domain patch
func toBankDetailsPatch(req *UpdateBankDetailsRequest) *identity.BankDetailsPatch {
	if req == nil {
		return nil
	}
	return &identity.BankDetailsPatch{
		Name:              req.Name,
		Address:           req.Address,
		BankNumber:        req.BankNumber,
		SettlementAccount: req.SettlementAccount,
		Details:           req.Details,
	}
}
