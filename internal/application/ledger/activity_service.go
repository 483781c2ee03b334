package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
)

// ActivityService exposes the read side of the activity trail and audit log
type ActivityService struct {
	activities ledger.ActivityRepository
	auditLogs  ledger.AuditLogRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activities ledger.ActivityRepository, auditLogs ledger.AuditLogRepository) *ActivityService {
	return &ActivityService{activities: activities, auditLogs: auditLogs}
}

// Recent returns the most recent activity entries across all parties
func (s *ActivityService) Recent(ctx context.Context, filter shared.Filter) ([]ledger.EntityActivity, error) {
	return s.activities.FindRecent(ctx, filter)
}

// ByParty returns one party's activity trail
func (s *ActivityService) ByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID, filter shared.Filter) ([]ledger.EntityActivity, error) {
	if !partyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PARTY_TYPE", "Party type must be customer or company")
	}
	return s.activities.FindByParty(ctx, partyType, partyID, filter)
}

// AuditTrail returns the most recent audit log entries
func (s *ActivityService) AuditTrail(ctx context.Context, filter shared.Filter) ([]ledger.AuditLog, error) {
	return s.auditLogs.FindRecent(ctx, filter)
}
