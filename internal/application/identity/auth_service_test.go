package identity

import (
	"context"
	"testing"
	"time"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/auth"
	"github.com/finvoice/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) CreateWithManager(ctx context.Context, company *identity.Company, manager *identity.Employee) error {
	args := m.Called(ctx, company, manager)
	return args.Error(0)
}

func (m *MockCompanyRepository) SaveWithBankDetails(ctx context.Context, company *identity.Company, details *identity.BankDetails) error {
	args := m.Called(ctx, company, details)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmployeeRepository is a mock implementation of EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*identity.Employee, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]identity.Employee, int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]identity.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*identity.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *identity.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

// MockMailSender is a mock implementation of mail.Sender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// =============================================================================
// Fixtures
// =============================================================================

type authServiceFixture struct {
	companyRepo  *MockCompanyRepository
	employeeRepo *MockEmployeeRepository
	blacklist    *auth.InMemoryTokenBlacklist
	jwtService   *auth.JWTService
	mailer       *MockMailSender
	service      *AuthService
}

func newAuthServiceFixture() *authServiceFixture {
	f := &authServiceFixture{
		companyRepo:  new(MockCompanyRepository),
		employeeRepo: new(MockEmployeeRepository),
		blacklist:    auth.NewInMemoryTokenBlacklist(),
		mailer:       new(MockMailSender),
	}
	f.jwtService = auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret",
		TokenExpiration: time.Hour,
		Issuer:          "finvoice-test",
	})
	f.service = NewAuthService(f.companyRepo, f.employeeRepo, f.jwtService, f.blacklist, f.mailer)
	return f
}

// =============================================================================
// Tests
// =============================================================================

func TestAuthServiceSignup(t *testing.T) {
	ctx := context.Background()
	req := SignupRequest{Email: "founder@example.com", Password: "long-enough-password", Position: "CEO"}

	t.Run("registers company and manager, returns token", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil)

		var savedCompany *identity.Company
		var savedEmployee *identity.Employee
		f.companyRepo.On("CreateWithManager", ctx, mock.AnythingOfType("*identity.Company"), mock.AnythingOfType("*identity.Employee")).
			Run(func(args mock.Arguments) {
				savedCompany = args.Get(1).(*identity.Company)
				savedEmployee = args.Get(2).(*identity.Employee)
			}).
			Return(nil)

		token, err := f.service.Signup(ctx, req)
		require.NoError(t, err)
		require.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)

		require.NotNil(t, savedCompany)
		require.NotNil(t, savedEmployee)
		assert.Equal(t, savedCompany.ID, savedEmployee.CompanyID)
		assert.True(t, savedEmployee.IsManager, "first employee becomes the manager")
		assert.Equal(t, "founder@example.com", savedEmployee.Email)
		assert.True(t, auth.CheckPassword(req.Password, savedEmployee.PasswordHash))

		claims, err := f.jwtService.ValidateToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, savedEmployee.CompanyID.String(), claims.CompanyID)
		assert.True(t, claims.IsManager)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("ExistsByEmail", ctx, req.Email).Return(true, nil)

		_, err := f.service.Signup(ctx, req)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		f.companyRepo.AssertNotCalled(t, "CreateWithManager")
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)
	employee, err := identity.NewEmployee(uuid.New(), "alice@example.com", hash, "", false)
	require.NoError(t, err)

	t.Run("valid credentials issue token", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("FindByEmail", ctx, "alice@example.com").Return(employee, nil)

		token, err := f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "correct-password"})
		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("FindByEmail", ctx, "alice@example.com").Return(employee, nil)

		_, err := f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})

	t.Run("unknown email is unauthorized, not not-found", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := f.service.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthServiceFixture()

	token, err := f.jwtService.GenerateToken(auth.GenerateTokenInput{
		CompanyID:  uuid.New(),
		EmployeeID: uuid.New(),
		Email:      "alice@example.com",
	})
	require.NoError(t, err)

	claims, err := f.jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, claims))

	revoked, err := f.blacklist.IsBlacklisted(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthServiceInviteStaff(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	manager, err := identity.NewEmployee(companyID, "manager@example.com", "hash", "CEO", true)
	require.NoError(t, err)
	staff, err := identity.NewEmployee(companyID, "staff@example.com", "hash", "", false)
	require.NoError(t, err)

	company := identity.NewCompany("Finvoice Inc", "")
	req := InviteStaffRequest{Email: "new.hire@example.com", Position: "Accountant"}

	t.Run("manager invites staff and credentials are mailed", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("FindByIDForCompany", ctx, companyID, manager.ID).Return(manager, nil)
		f.employeeRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
		f.employeeRepo.On("Save", ctx, mock.AnythingOfType("*identity.Employee")).Return(nil)
		f.companyRepo.On("FindByID", ctx, companyID).Return(company, nil)

		var mailedBody string
		f.mailer.On("Send", ctx, "new.hire@example.com", "Staff invitation", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				mailedBody = args.Get(3).(string)
			}).
			Return(nil)

		response, err := f.service.InviteStaff(ctx, companyID, manager.ID, req)
		require.NoError(t, err)

		assert.Equal(t, "new.hire@example.com", response.Email)
		assert.Equal(t, "Accountant", response.Position)
		assert.False(t, response.IsManager)
		assert.Contains(t, mailedBody, "Finvoice Inc")
		assert.Contains(t, mailedBody, "new.hire@example.com")
	})

	t.Run("non-manager is forbidden", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("FindByIDForCompany", ctx, companyID, staff.ID).Return(staff, nil)

		_, err := f.service.InviteStaff(ctx, companyID, staff.ID, req)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		f.employeeRepo.AssertNotCalled(t, "Save")
		f.mailer.AssertNotCalled(t, "Send")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("FindByIDForCompany", ctx, companyID, manager.ID).Return(manager, nil)
		f.employeeRepo.On("ExistsByEmail", ctx, req.Email).Return(true, nil)

		_, err := f.service.InviteStaff(ctx, companyID, manager.ID, req)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("mail failure leaves no employee behind", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.employeeRepo.On("FindByIDForCompany", ctx, companyID, manager.ID).Return(manager, nil)
		f.employeeRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
		f.companyRepo.On("FindByID", ctx, companyID).Return(company, nil)
		f.mailer.On("Send", ctx, "new.hire@example.com", "Staff invitation", mock.AnythingOfType("string")).Return(assert.AnError)

		_, err := f.service.InviteStaff(ctx, companyID, manager.ID, req)
		assert.ErrorIs(t, err, assert.AnError)
		f.employeeRepo.AssertNotCalled(t, "Save")

		// A retried invite must not hit the duplicate-email guard
		f.employeeRepo.On("Save", ctx, mock.AnythingOfType("*identity.Employee")).Return(nil)
		f.mailer.ExpectedCalls = nil
		f.mailer.On("Send", ctx, "new.hire@example.com", "Staff invitation", mock.AnythingOfType("string")).Return(nil)

		_, err = f.service.InviteStaff(ctx, companyID, manager.ID, req)
		require.NoError(t, err)
	})
}
