package catalog

import (
	"time"

	"github.com/finvoice/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateCategoryRequest creates a new product category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// UpdateCategoryRequest is a sparse category update
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=200"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductRequest creates a new product
type CreateProductRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Description string     `json:"description"`
	Producer    string     `json:"producer" binding:"max=200"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

// UpdateProductRequest is a sparse product update
type UpdateProductRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Producer    *string    `json:"producer" binding:"omitempty,max=200"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Producer    string            `json:"producer"`
	CategoryID  *uuid.UUID        `json:"category_id,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ToCategoryResponse converts a category to its response form
func ToCategoryResponse(category *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToProductResponse converts a product to its response form
func ToProductResponse(product *catalog.Product) ProductResponse {
	response := ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Producer:    product.Producer,
		CategoryID:  product.CategoryID,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Category != nil {
		category := ToCategoryResponse(product.Category)
		response.Category = &category
	}
	return response
}
