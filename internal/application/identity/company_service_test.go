package identity

import (
	"context"
	"testing"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompanyServiceUpdate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("creates bank details when none exist", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		service := NewCompanyService(repo)

		company := identity.NewCompany("Finvoice Inc", "")
		company.ID = companyID

		name := "First Bank"
		account := "40702810000000000001"
		req := UpdateCompanyRequest{
			BankDetail: &UpdateBankDetailsRequest{Name: &name, SettlementAccount: &account},
		}

		var savedDetails *identity.BankDetails
		repo.On("FindByID", ctx, companyID).Return(company, nil)
		repo.On("SaveWithBankDetails", ctx, mock.AnythingOfType("*identity.Company"), mock.AnythingOfType("*identity.BankDetails")).
			Run(func(args mock.Arguments) {
				savedDetails = args.Get(2).(*identity.BankDetails)
			}).
			Return(nil)

		_, err := service.Update(ctx, companyID, req)
		require.NoError(t, err)

		require.NotNil(t, savedDetails)
		assert.Equal(t, "First Bank", savedDetails.Name)
		assert.Equal(t, "40702810000000000001", savedDetails.SettlementAccount)
		assert.Empty(t, savedDetails.Address, "unpatched fields start empty")
	})

	t.Run("merges into existing bank details", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		service := NewCompanyService(repo)

		existing := identity.NewBankDetails("Old Bank", "1 Bank St", "044525225", "40702810000000000001", "")
		company := identity.NewCompany("Finvoice Inc", "")
		company.ID = companyID
		company.BankDetailID = &existing.ID
		company.BankDetail = existing

		name := "New Bank"
		req := UpdateCompanyRequest{BankDetail: &UpdateBankDetailsRequest{Name: &name}}

		var savedDetails *identity.BankDetails
		repo.On("FindByID", ctx, companyID).Return(company, nil)
		repo.On("SaveWithBankDetails", ctx, mock.AnythingOfType("*identity.Company"), mock.AnythingOfType("*identity.BankDetails")).
			Run(func(args mock.Arguments) {
				savedDetails = args.Get(2).(*identity.BankDetails)
			}).
			Return(nil)

		_, err := service.Update(ctx, companyID, req)
		require.NoError(t, err)

		require.NotNil(t, savedDetails)
		assert.Equal(t, existing.ID, savedDetails.ID, "existing row is updated, not replaced")
		assert.Equal(t, "New Bank", savedDetails.Name)
		assert.Equal(t, "1 Bank St", savedDetails.Address)
	})

	t.Run("name-only update leaves bank details untouched", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		service := NewCompanyService(repo)

		company := identity.NewCompany("Old Name", "")
		company.ID = companyID

		newName := "New Name"
		repo.On("FindByID", ctx, companyID).Return(company, nil)
		repo.On("SaveWithBankDetails", ctx, mock.AnythingOfType("*identity.Company"), (*identity.BankDetails)(nil)).Return(nil)

		_, err := service.Update(ctx, companyID, UpdateCompanyRequest{Name: &newName})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
