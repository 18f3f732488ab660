package catalog

import (
	"context"

	"github.com/finvoice/backend/internal/domain/catalog"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new product. A referenced category must belong to the
// same company.
func (s *ProductService) Create(ctx context.Context, companyID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	product, err := catalog.NewProduct(companyID, req.Name, req.Description, req.Producer, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product within the company
func (s *ProductService) GetByID(ctx context.Context, companyID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List returns a page of the company's products
func (s *ProductService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, total, err := s.productRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies a sparse update to a product
func (s *ProductService) Update(ctx context.Context, companyID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	merged := product.Merge(catalog.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Producer:    req.Producer,
		CategoryID:  req.CategoryID,
	})
	merged.Category = nil
	if err := s.productRepo.Save(ctx, &merged); err != nil {
		return nil, err
	}

	response := ToProductResponse(&merged)
	return &response, nil
}

// Delete removes a product unless invoices still reference it
func (s *ProductService) Delete(ctx context.Context, companyID, productID uuid.UUID) error {
	return s.productRepo.DeleteForCompany(ctx, companyID, productID)
}
