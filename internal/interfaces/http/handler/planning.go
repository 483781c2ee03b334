package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	planningapp "github.com/marwan-sadiq/deptapp/internal/application/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/shopspring/decimal"
)

// PlanningHandler handles payment planning endpoints
type PlanningHandler struct {
	BaseHandler
	planningService *planningapp.PlanningService
}

// NewPlanningHandler creates a new PlanningHandler
func NewPlanningHandler(planningService *planningapp.PlanningService) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

// RegisterRoutes registers planning endpoints
func (h *PlanningHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/planning")
	{
		plans.POST("/generate", h.Generate)
		plans.GET("/plans", h.ActivePlans)
		plans.POST("/plans/:id/optimize", h.Optimize)
		plans.GET("/schedules", h.Schedules)
		plans.POST("/schedules/:id/complete", h.CompleteSchedule)
		plans.GET("/analytics", h.Analytics)
		plans.GET("/balances", h.Balances)
	}
}

// BalanceRequest is one day's available cash in a generation request
type BalanceRequest struct {
	Date   string          `json:"date" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// DebtPlanRequest is one debt to include in a generation run
type DebtPlanRequest struct {
	EntityName string          `json:"entity_name" binding:"required,min=1,max=200"`
	TotalDebt  decimal.Decimal `json:"total_debt"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Priority   int             `json:"priority" binding:"required,oneof=1 2 3"`
	DueDate    *string         `json:"due_date"`
}

// GeneratePlanRequest is the request body for a plan generation run
type GeneratePlanRequest struct {
	Balances []BalanceRequest  `json:"balances" binding:"required,min=1,dive"`
	Debts    []DebtPlanRequest `json:"debts" binding:"required,min=1,dive"`
}

// CompleteScheduleRequest is the request body for completing a scheduled payment
type CompleteScheduleRequest struct {
	ActualAmount *decimal.Decimal `json:"actual_amount"`
}

// Generate runs the allocation engine over daily balances and open debts
func (h *PlanningHandler) Generate(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	input := planningapp.GeneratePlanInput{
		Balances: make([]planningapp.BalanceInput, 0, len(req.Balances)),
		Debts:    make([]planningapp.DebtPlanInput, 0, len(req.Debts)),
	}
	for _, b := range req.Balances {
		date, err := parseDate(b.Date)
		if err != nil {
			h.BadRequest(c, "Invalid balance date, expected YYYY-MM-DD")
			return
		}
		input.Balances = append(input.Balances, planningapp.BalanceInput{
			Date:   date,
			Amount: b.Amount,
		})
	}
	for _, d := range req.Debts {
		dueDate, err := parseOptionalDate(d.DueDate)
		if err != nil {
			h.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
			return
		}
		input.Debts = append(input.Debts, planningapp.DebtPlanInput{
			EntityName: d.EntityName,
			TotalDebt:  d.TotalDebt,
			PaidAmount: d.PaidAmount,
			Priority:   planning.Priority(d.Priority),
			DueDate:    dueDate,
		})
	}

	result, err := h.planningService.Generate(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// ActivePlans returns the currently open payment plans
func (h *PlanningHandler) ActivePlans(c *gin.Context) {
	plans, err := h.planningService.ActivePlans(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, plans)
}

// Schedules returns schedule entries matching the query filters
func (h *PlanningHandler) Schedules(c *gin.Context) {
	input := planningapp.ScheduleQueryInput{}

	if v := c.Query("start_date"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			h.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		input.StartDate = &date
	}
	if v := c.Query("end_date"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			h.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		input.EndDate = &date
	}
	if v := c.Query("party_type"); v != "" {
		input.PartyType = ledger.PartyType(v)
	}
	if v := c.Query("party_id"); v != "" {
		partyID, ok := parseUUID(v)
		if !ok {
			h.BadRequest(c, "Invalid party ID")
			return
		}
		input.PartyID = &partyID
	}
	if v := c.Query("is_paid"); v != "" {
		isPaid := v == "true" || v == "1"
		input.IsPaid = &isPaid
	}

	result, err := h.planningService.Schedules(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// CompleteSchedule marks a scheduled payment as made
func (h *PlanningHandler) CompleteSchedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid schedule ID")
		return
	}

	// Body is optional; an empty body completes at the scheduled amount
	var req CompleteScheduleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.ValidationError(c, err)
			return
		}
	}

	result, err := h.planningService.CompleteSchedule(c.Request.Context(), planningapp.CompleteScheduleInput{
		ScheduleID:   id,
		ActualAmount: req.ActualAmount,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Analytics returns the priority breakdown and daily cash utilization
func (h *PlanningHandler) Analytics(c *gin.Context) {
	result, err := h.planningService.Analytics(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Optimize consolidates a plan's unpaid schedule entries
func (h *PlanningHandler) Optimize(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid plan ID")
		return
	}

	result, err := h.planningService.Optimize(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Balances returns stored daily balances, optionally bounded by date range
func (h *PlanningHandler) Balances(c *gin.Context) {
	var start, end *time.Time

	if v := c.Query("start_date"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			h.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		start = &date
	}
	if v := c.Query("end_date"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			h.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		end = &date
	}

	balances, err := h.planningService.Balances(c.Request.Context(), start, end)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, balances)
}
