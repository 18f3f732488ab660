package identity

import (
	"context"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/auth"
	"github.com/finvoice/backend/internal/infrastructure/logger"
	"github.com/finvoice/backend/internal/infrastructure/mail"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles signup, login, logout and staff provisioning
type AuthService struct {
	companyRepo  identity.CompanyRepository
	employeeRepo identity.EmployeeRepository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	mailer       mail.Sender
}

// NewAuthService creates a new AuthService
func NewAuthService(
	companyRepo identity.CompanyRepository,
	employeeRepo identity.EmployeeRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	mailer mail.Sender,
) *AuthService {
	return &AuthService{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		mailer:       mailer,
	}
}

// Signup registers a fresh company and its first employee, who becomes the
// company's manager. The new employee is logged in immediately.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*TokenResponse, error) {
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

	company := identity.NewCompany("", "")
	employee, err := identity.NewEmployee(company.ID, req.Email, hash, req.Position, true)
	if err != nil {
		return nil, err
	}
	if err := s.companyRepo.CreateWithManager(ctx, company, employee); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Company registered",
		zap.String("company_id", company.ID.String()),
		zap.String("manager_id", employee.ID.String()),
	)

	return s.issueToken(employee)
}

// Login authenticates an employee by email and password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	employee, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	if !auth.CheckPassword(req.Password, employee.PasswordHash) {
		return nil, shared.ErrUnauthorized
	}

	return s.issueToken(employee)
}

// Logout revokes the presented token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	return s.blacklist.AddToBlacklist(ctx, claims.ID, claims.RemainingTTL())
}

// InviteStaff provisions a new employee with a generated password and mails
// the credentials. Only managers may invite staff.
func (s *AuthService) InviteStaff(ctx context.Context, companyID, actorID uuid.UUID, req InviteStaffRequest) (*EmployeeResponse, error) {
	actor, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsManager {
		return nil, shared.NewDomainError("FORBIDDEN", "Only a manager may invite staff")
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee with this email already exists")
	}

	password, err := auth.GenerateRandomPassword(10)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	employee, err := identity.NewEmployee(companyID, req.Email, hash, req.Position, false)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	// Mail first: a failed send must not leave behind an account whose
	// generated password was never delivered.
	body := mail.RenderStaffInvitation(employee.Email, password, company.Name)
	if err := s.mailer.Send(ctx, employee.Email, mail.StaffInvitationSubject, body); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Staff invited",
		zap.String("employee_id", employee.ID.String()),
		zap.String("invited_by", actor.ID.String()),
	)

	response := ToEmployeeResponse(employee)
	return &response, nil
}

func (s *AuthService) issueToken(employee *identity.Employee) (*TokenResponse, error) {
	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		CompanyID:  employee.CompanyID,
		EmployeeID: employee.ID,
		Email:      employee.Email,
		IsManager:  employee.IsManager,
	})
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
	}, nil
}
