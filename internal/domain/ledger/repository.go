package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	shared.Repository[Customer]
	FindByName(ctx context.Context, name string) (*Customer, error)
}

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	shared.Repository[Company]
	FindByName(ctx context.Context, name string) (*Company, error)
}

// DebtRepository defines persistence operations for debt entries
type DebtRepository interface {
	shared.Repository[Debt]
	FindByParty(ctx context.Context, partyType PartyType, partyID uuid.UUID) ([]Debt, error)
	FindUnsettled(ctx context.Context) ([]Debt, error)
}

// ActivityRepository defines persistence operations for the activity trail
type ActivityRepository interface {
	Save(ctx context.Context, activity *EntityActivity) error
	FindRecent(ctx context.Context, filter shared.Filter) ([]EntityActivity, error)
	FindByParty(ctx context.Context, partyType PartyType, partyID uuid.UUID, filter shared.Filter) ([]EntityActivity, error)
}

// AuditLogRepository defines persistence operations for audit log entries
type AuditLogRepository interface {
	Save(ctx context.Context, entry *AuditLog) error
	FindRecent(ctx context.Context, filter shared.Filter) ([]AuditLog, error)
}
