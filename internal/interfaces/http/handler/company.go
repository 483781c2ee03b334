package handler

import (
	"github.com/gin-gonic/gin"
	ledgerapp "github.com/marwan-sadiq/deptapp/internal/application/ledger"
)

// CompanyHandler handles supplier company ledger endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *ledgerapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *ledgerapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// RegisterRoutes registers company endpoints
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.GET("", h.List)
		companies.POST("", h.Create)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}

// Create records a new supplier company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), ledgerapp.CreatePartyInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, company)
}

// List returns companies with pagination
func (h *CompanyHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.ValidationError(c, err)
		return
	}

	page, err := h.companyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns a company with its debts and outstanding total
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	detail, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, detail)
}

// Update changes a company's name and contact details
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), ledgerapp.UpdatePartyInput{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete removes a company along with its debt entries
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
