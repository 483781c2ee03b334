package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
)

// ScheduleQuery filters payment schedule lookups
type ScheduleQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	PartyType ledger.PartyType
	PartyID   *uuid.UUID
	IsPaid    *bool
}

// PlanRepository defines persistence operations for payment plans
type PlanRepository interface {
	shared.Repository[PaymentPlan]
	FindActive(ctx context.Context) ([]PaymentPlan, error)
	FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) ([]PaymentPlan, error)
	SaveAll(ctx context.Context, plans []*PaymentPlan) error
}

// ScheduleRepository defines persistence operations for scheduled payments
type ScheduleRepository interface {
	shared.Repository[PaymentSchedule]
	FindByQuery(ctx context.Context, query ScheduleQuery) ([]PaymentSchedule, error)
	FindByPlan(ctx context.Context, planID uuid.UUID) ([]PaymentSchedule, error)
	SaveAll(ctx context.Context, schedules []*PaymentSchedule) error
	DeleteByPlan(ctx context.Context, planID uuid.UUID) error
}

// DailyBalanceRepository defines persistence operations for daily balances.
// Upsert keeps the one-row-per-date rule.
type DailyBalanceRepository interface {
	Upsert(ctx context.Context, balance *DailyBalance) error
	FindByDate(ctx context.Context, date time.Time) (*DailyBalance, error)
	FindInRange(ctx context.Context, start, end *time.Time) ([]DailyBalance, error)
}
