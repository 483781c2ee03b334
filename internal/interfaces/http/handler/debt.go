package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	ledgerapp "github.com/marwan-sadiq/deptapp/internal/application/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// DebtHandler handles debt and payment endpoints
type DebtHandler struct {
	BaseHandler
	debtService *ledgerapp.DebtService
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService *ledgerapp.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// RegisterRoutes registers debt endpoints
func (h *DebtHandler) RegisterRoutes(rg *gin.RouterGroup) {
	debts := rg.Group("/debts")
	{
		debts.GET("", h.List)
		debts.POST("", h.Create)
		debts.POST("/payments", h.RecordPayment)
		debts.GET("/:id", h.Get)
		debts.PUT("/:id", h.Update)
		debts.DELETE("/:id", h.Delete)
		debts.POST("/:id/settle", h.Settle)
	}
}

// CreateDebtRequest is the request body for recording a new debt
type CreateDebtRequest struct {
	PartyType string          `json:"party_type" binding:"required,oneof=customer company"`
	PartyID   string          `json:"party_id" binding:"required,uuid"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note" binding:"omitempty,max=500"`
	DueDate   *string         `json:"due_date"`
}

// RecordPaymentRequest is the request body for recording a payment
type RecordPaymentRequest struct {
	PartyType string          `json:"party_type" binding:"required,oneof=customer company"`
	PartyID   string          `json:"party_id" binding:"required,uuid"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note" binding:"omitempty,max=500"`
}

// UpdateDebtRequest is the request body for updating a debt entry
type UpdateDebtRequest struct {
	Note    *string `json:"note" binding:"omitempty,max=500"`
	DueDate *string `json:"due_date"`
}

// parseDate accepts dates as "2006-01-02" or RFC 3339
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create records a new debt against a customer or company
func (h *DebtHandler) Create(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	partyID, ok := parseUUID(req.PartyID)
	if !ok {
		h.BadRequest(c, "Invalid party ID")
		return
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		h.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}

	debt, err := h.debtService.Create(c.Request.Context(), ledgerapp.CreateDebtInput{
		PartyType: ledger.PartyType(req.PartyType),
		PartyID:   partyID,
		Amount:    req.Amount,
		Note:      req.Note,
		DueDate:   dueDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, debt)
}

// RecordPayment records a payment against a party's outstanding debt.
// Payments are stored as negative ledger entries.
func (h *DebtHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	partyID, ok := parseUUID(req.PartyID)
	if !ok {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	payment, err := h.debtService.RecordPayment(c.Request.Context(), ledgerapp.RecordPaymentInput{
		PartyType: ledger.PartyType(req.PartyType),
		PartyID:   partyID,
		Amount:    req.Amount,
		Note:      req.Note,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, payment)
}

// List returns debt entries, optionally filtered by party
func (h *DebtHandler) List(c *gin.Context) {
	partyType := c.Query("party_type")
	partyIDStr := c.Query("party_id")

	if partyType != "" && partyIDStr != "" {
		partyID, ok := parseUUID(partyIDStr)
		if !ok {
			h.BadRequest(c, "Invalid party ID")
			return
		}
		debts, err := h.debtService.ListByParty(c.Request.Context(), ledger.PartyType(partyType), partyID)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, debts)
		return
	}

	filter, err := listFilter(c)
	if err != nil {
		h.ValidationError(c, err)
		return
	}
	page, err := h.debtService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns a single debt entry
func (h *DebtHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, debt)
}

// Update changes a debt entry's note or due date
func (h *DebtHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		h.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}

	debt, err := h.debtService.Update(c.Request.Context(), ledgerapp.UpdateDebtInput{
		ID:      id,
		Note:    req.Note,
		DueDate: dueDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, debt)
}

// Settle marks a debt entry as fully settled
func (h *DebtHandler) Settle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.Settle(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, debt)
}

// Delete removes a debt entry and resyncs the party's totals
func (h *DebtHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	if err := h.debtService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
