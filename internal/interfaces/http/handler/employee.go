package handler

import (
	identityapp "github.com/finvoice/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles staff directory endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *identityapp.EmployeeService
	authService     *identityapp.AuthService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *identityapp.EmployeeService, authService *identityapp.AuthService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		authService:     authService,
	}
}

// RegisterRoutes registers employee routes
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	{
		employees.GET("", h.List)
		employees.POST("", h.Create)
		employees.POST("/invite-staff", h.Invite)
		employees.GET("/:id", h.Get)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}

// List returns a page of the company's employees
func (h *EmployeeHandler) List(c *gin.Context) {
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

	result, err := h.employeeService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Create adds an employee with explicit credentials
func (h *EmployeeHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// Invite provisions a new employee with generated credentials
func (h *EmployeeHandler) Invite(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	employeeID, err := getEmployeeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.InviteStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	invited, err := h.authService.InviteStaff(c.Request.Context(), companyID, employeeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invited)
}

// Get returns a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// Update applies a sparse update to an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req identityapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// Delete removes an employee from the company
func (h *EmployeeHandler) Delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
