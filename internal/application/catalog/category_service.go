package catalog

import (
	"context"

	"github.com/finvoice/backend/internal/domain/catalog"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, companyID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(companyID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category within the company
func (s *CategoryService) GetByID(ctx context.Context, companyID, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// List returns a page of the company's categories
func (s *CategoryService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[CategoryResponse], error) {
	categories, total, err := s.categoryRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies a sparse update to a category
func (s *CategoryService) Update(ctx context.Context, companyID, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	merged := category.Merge(catalog.CategoryPatch{Name: req.Name})
	if err := s.categoryRepo.Save(ctx, &merged); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(&merged)
	return &response, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, companyID, categoryID uuid.UUID) error {
	return s.categoryRepo.DeleteForCompany(ctx, companyID, categoryID)
}
