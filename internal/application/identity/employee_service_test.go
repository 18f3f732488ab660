package identity

import (
	"context"
	"testing"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeServiceCreate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("creates regular staff", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)

		repo.On("ExistsByEmail", ctx, "carol@example.com").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*identity.Employee")).Return(nil)

		response, err := service.Create(ctx, companyID, CreateEmployeeRequest{
			Email:    "carol@example.com",
			Password: "long enough",
			Position: "Accountant",
		})
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", response.Email)
		assert.Equal(t, "Accountant", response.Position)
		assert.False(t, response.IsManager)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)

		repo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

		_, err := service.Create(ctx, companyID, CreateEmployeeRequest{
			Email:    "taken@example.com",
			Password: "long enough",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestEmployeeServiceUpdate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	employee, err := identity.NewEmployee(companyID, "bob@example.com", "hash", "Junior", false)
	require.NoError(t, err)

	repo := new(MockEmployeeRepository)
	service := NewEmployeeService(repo)

	position := "Senior"
	repo.On("FindByIDForCompany", ctx, companyID, employee.ID).Return(employee, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*identity.Employee")).Return(nil)

	response, err := service.Update(ctx, companyID, employee.ID, UpdateEmployeeRequest{Position: &position})
	require.NoError(t, err)
	assert.Equal(t, "Senior", response.Position)
	assert.Equal(t, "bob@example.com", response.Email)
}

func TestEmployeeServiceDelete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("removes regular staff", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)

		staff, err := identity.NewEmployee(companyID, "staff@example.com", "hash", "", false)
		require.NoError(t, err)

		repo.On("FindByIDForCompany", ctx, companyID, staff.ID).Return(staff, nil)
		repo.On("DeleteForCompany", ctx, companyID, staff.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, companyID, staff.ID))
		repo.AssertExpectations(t)
	})

	t.Run("refuses to remove the manager", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)

		manager, err := identity.NewEmployee(companyID, "manager@example.com", "hash", "", true)
		require.NoError(t, err)

		repo.On("FindByIDForCompany", ctx, companyID, manager.ID).Return(manager, nil)

		err = service.Delete(ctx, companyID, manager.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		repo.AssertNotCalled(t, "DeleteForCompany")
	})

	t.Run("missing employee propagates not found", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)

		id := uuid.New()
		repo.On("FindByIDForCompany", ctx, companyID, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(ctx, companyID, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
