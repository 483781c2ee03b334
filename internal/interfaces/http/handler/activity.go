package handler

import (
	"github.com/gin-gonic/gin"
	ledgerapp "github.com/marwan-sadiq/deptapp/internal/application/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
)

// ActivityHandler handles activity feed and audit trail endpoints
type ActivityHandler struct {
	BaseHandler
	activityService *ledgerapp.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *ledgerapp.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// RegisterRoutes registers activity endpoints
func (h *ActivityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	activity := rg.Group("/activity")
	{
		activity.GET("", h.Recent)
		activity.GET("/:party_type/:party_id", h.ByParty)
	}
	rg.GET("/audit", h.AuditTrail)
}

// Recent returns the most recent ledger activity across all parties
func (h *ActivityHandler) Recent(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.ValidationError(c, err)
		return
	}

	activities, err := h.activityService.Recent(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, activities)
}

// ByParty returns the activity feed for one customer or company
func (h *ActivityHandler) ByParty(c *gin.Context) {
	partyID, ok := parseUUID(c.Param("party_id"))
	if !ok {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	filter, err := listFilter(c)
	if err != nil {
		h.ValidationError(c, err)
		return
	}

	activities, err := h.activityService.ByParty(c.Request.Context(),
		ledger.PartyType(c.Param("party_type")), partyID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, activities)
}

// AuditTrail returns the audit log of destructive and financial operations
func (h *ActivityHandler) AuditTrail(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.ValidationError(c, err)
		return
	}

	entries, err := h.activityService.AuditTrail(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entries)
}
