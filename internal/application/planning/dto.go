package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/shopspring/decimal"
)

// BalanceInput is one day's cash availability in a generation request
type BalanceInput struct {
	Date   time.Time
	Amount decimal.Decimal
}

// DebtPlanInput is one debt to plan payments for
type DebtPlanInput struct {
	EntityName string
	TotalDebt  decimal.Decimal
	PaidAmount decimal.Decimal
	Priority   planning.Priority
	DueDate    *time.Time
}

// GeneratePlanInput contains the input for a plan generation run
type GeneratePlanInput struct {
	Balances []BalanceInput
	Debts    []DebtPlanInput
}

// GeneratePlanResult is the persisted outcome of a generation run
type GeneratePlanResult struct {
	Plans     []*planning.PaymentPlan     `json:"plans"`
	Schedules []*planning.PaymentSchedule `json:"schedules"`
	Summary   planning.PlanSummary        `json:"summary"`
}

// ScheduleQueryInput filters the schedule listing
type ScheduleQueryInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	PartyType ledger.PartyType
	PartyID   *uuid.UUID
	IsPaid    *bool
}

// ScheduleListResult bundles schedule entries with a completion summary
type ScheduleListResult struct {
	Schedules []planning.PaymentSchedule `json:"schedules"`
	Summary   ScheduleSummary            `json:"summary"`
}

// ScheduleSummary summarizes completion progress over a set of entries
type ScheduleSummary struct {
	TotalEntries   int             `json:"total_entries"`
	PaidEntries    int             `json:"paid_entries"`
	UnpaidEntries  int             `json:"unpaid_entries"`
	TotalScheduled decimal.Decimal `json:"total_scheduled"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
}

// CompleteScheduleInput contains the input for marking a payment as made
type CompleteScheduleInput struct {
	ScheduleID   uuid.UUID
	ActualAmount *decimal.Decimal
}

// CompleteScheduleResult reports the state after completing a payment
type CompleteScheduleResult struct {
	Schedule    *planning.PaymentSchedule `json:"schedule"`
	Plan        *planning.PaymentPlan     `json:"plan"`
	PlanSettled bool                      `json:"plan_settled"`
}

// PriorityBreakdown aggregates plan totals for one priority level
type PriorityBreakdown struct {
	Priority  planning.Priority `json:"priority"`
	Label     string            `json:"label"`
	PlanCount int               `json:"plan_count"`
	TotalDebt decimal.Decimal   `json:"total_debt"`
	Remaining decimal.Decimal   `json:"remaining"`
}

// DailyUtilization compares scheduled amounts against availability per date
type DailyUtilization struct {
	Date        time.Time       `json:"date"`
	Available   decimal.Decimal `json:"available"`
	Scheduled   decimal.Decimal `json:"scheduled"`
	Utilization float64         `json:"utilization"`
}

// AnalyticsResult is the planning analytics response
type AnalyticsResult struct {
	Priorities  []PriorityBreakdown `json:"priorities"`
	Utilization []DailyUtilization  `json:"utilization"`
}

// OptimizeResult reports the outcome of a consolidation run
type OptimizeResult struct {
	PlanID    uuid.UUID                   `json:"plan_id"`
	Before    int                         `json:"before"`
	After     int                         `json:"after"`
	Schedules []*planning.PaymentSchedule `json:"schedules"`
}
