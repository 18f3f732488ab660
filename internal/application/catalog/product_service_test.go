package catalog

import (
	"context"
	"testing"

	"github.com/finvoice/backend/internal/domain/catalog"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockProductRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]catalog.Category, int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]catalog.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("creates product without category", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		response, err := service.Create(ctx, companyID, CreateProductRequest{Name: "Consulting"})
		require.NoError(t, err)
		assert.Equal(t, "Consulting", response.Name)
		assert.Nil(t, response.CategoryID)
		categoryRepo.AssertNotCalled(t, "FindByIDForCompany")
	})

	t.Run("validates category ownership", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		category, err := catalog.NewCategory(companyID, "Services")
		require.NoError(t, err)

		categoryRepo.On("FindByIDForCompany", ctx, companyID, category.ID).Return(category, nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		response, err := service.Create(ctx, companyID, CreateProductRequest{Name: "Consulting", CategoryID: &category.ID})
		require.NoError(t, err)
		require.NotNil(t, response.CategoryID)
		assert.Equal(t, category.ID, *response.CategoryID)
	})

	t.Run("rejects foreign category", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		foreignID := uuid.New()
		categoryRepo.On("FindByIDForCompany", ctx, companyID, foreignID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, companyID, CreateProductRequest{Name: "Consulting", CategoryID: &foreignID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		productRepo.AssertNotCalled(t, "Save")
	})
}

func TestProductServiceUpdate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	product, err := catalog.NewProduct(companyID, "Old Name", "", "Old Producer", nil)
	require.NoError(t, err)

	t.Run("applies sparse update", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		name := "New Name"
		productRepo.On("FindByIDForCompany", ctx, companyID, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		response, err := service.Update(ctx, companyID, product.ID, UpdateProductRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New Name", response.Name)
		assert.Equal(t, "Old Producer", response.Producer)
	})

	t.Run("rejects category from another company", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		foreignID := uuid.New()
		productRepo.On("FindByIDForCompany", ctx, companyID, product.ID).Return(product, nil)
		categoryRepo.On("FindByIDForCompany", ctx, companyID, foreignID).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, companyID, product.ID, UpdateProductRequest{CategoryID: &foreignID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		productRepo.AssertNotCalled(t, "Save")
	})
}

func TestProductServiceDelete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	productID := uuid.New()

	t.Run("delegates to repository", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewProductService(productRepo, new(MockCategoryRepository))

		productRepo.On("DeleteForCompany", ctx, companyID, productID).Return(nil)
		require.NoError(t, service.Delete(ctx, companyID, productID))
	})

	t.Run("propagates delete protection", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewProductService(productRepo, new(MockCategoryRepository))

		protectErr := shared.NewDomainError("INVALID_STATE", "Product is referenced by invoices and cannot be deleted")
		productRepo.On("DeleteForCompany", ctx, companyID, productID).Return(protectErr)

		err := service.Delete(ctx, companyID, productID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})
}
