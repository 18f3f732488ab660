package handler

import (
	identityapp "github.com/finvoice/backend/internal/application/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company profile endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *identityapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *identityapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// RegisterRoutes registers company routes
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}

// List returns the caller's company. Companies of other tenants are
// invisible, so the list holds at most one row.
func (h *CompanyHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, []any{company})
}

// Get returns the caller's company profile
func (h *CompanyHandler) Get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}
	if id != companyID {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Update applies a sparse update to the company profile
func (h *CompanyHandler) Update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}
	if id != companyID {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	var req identityapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete removes the caller's company
func (h *CompanyHandler) Delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}
	if id != companyID {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), companyID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
