package persistence

import (
	"context"
	"testing"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCompanyTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&identity.BankDetails{}, &identity.Company{}, &identity.Employee{}))
	return db
}

func TestGormCompanyRepositoryCreateWithManager(t *testing.T) {
	ctx := context.Background()

	t.Run("persists company and manager together", func(t *testing.T) {
		db := setupCompanyTestDB(t)
		repo := NewGormCompanyRepository(db)

		company := identity.NewCompany("", "")
		manager, err := identity.NewEmployee(company.ID, "founder@example.com", "hash", "CEO", true)
		require.NoError(t, err)

		require.NoError(t, repo.CreateWithManager(ctx, company, manager))

		found, err := repo.FindByID(ctx, company.ID)
		require.NoError(t, err)
		assert.Equal(t, company.ID, found.ID)

		employeeRepo := NewGormEmployeeRepository(db)
		saved, err := employeeRepo.FindByEmail(ctx, "founder@example.com")
		require.NoError(t, err)
		assert.Equal(t, company.ID, saved.CompanyID)
		assert.True(t, saved.IsManager)
	})

	t.Run("failed manager insert rolls the company back", func(t *testing.T) {
		db := setupCompanyTestDB(t)
		repo := NewGormCompanyRepository(db)

		existing := identity.NewCompany("", "")
		taken, err := identity.NewEmployee(existing.ID, "founder@example.com", "hash", "", true)
		require.NoError(t, err)
		require.NoError(t, repo.CreateWithManager(ctx, existing, taken))

		// Same email trips the unique index inside the transaction
		company := identity.NewCompany("", "")
		manager, err := identity.NewEmployee(company.ID, "founder@example.com", "hash", "", true)
		require.NoError(t, err)

		require.Error(t, repo.CreateWithManager(ctx, company, manager))

		_, err = repo.FindByID(ctx, company.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var count int64
		require.NoError(t, db.Model(&identity.Company{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
