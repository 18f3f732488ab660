package handler

import (
	billingapp "github.com/finvoice/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles counterparty organization endpoints
type OrganizationHandler struct {
	BaseHandler
	organizationService *billingapp.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(organizationService *billingapp.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizationService: organizationService}
}

// RegisterRoutes registers organization routes
func (h *OrganizationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	organizations := rg.Group("/organizations")
	{
		organizations.POST("", h.Create)
		organizations.GET("", h.List)
		organizations.GET("/:id", h.Get)
		organizations.PUT("/:id", h.Update)
		organizations.DELETE("/:id", h.Delete)
	}
}

// Create creates a new organization
func (h *OrganizationHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req billingapp.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	organization, err := h.organizationService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, organization)
}

// List returns a page of organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	filter, err := parseListRequest(c)
	if err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.organizationService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single organization
func (h *OrganizationHandler) Get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	organization, err := h.organizationService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, organization)
}

// Update applies a sparse update to an organization
func (h *OrganizationHandler) Update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req billingapp.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	organization, err := h.organizationService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, organization)
}

// Delete removes an organization
func (h *OrganizationHandler) Delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	if err := h.organizationService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
