package planning

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PlanningService orchestrates plan generation, schedule tracking, and
// planning analytics
type PlanningService struct {
	planner              *planning.Planner
	plans                planning.PlanRepository
	schedules            planning.ScheduleRepository
	balances             planning.DailyBalanceRepository
	logger               *zap.Logger
	consolidationEnabled bool
}

// NewPlanningService creates a new planning service
func NewPlanningService(
	planner *planning.Planner,
	plans planning.PlanRepository,
	schedules planning.ScheduleRepository,
	balances planning.DailyBalanceRepository,
	logger *zap.Logger,
) *PlanningService {
	return &PlanningService{
		planner:              planner,
		plans:                plans,
		schedules:            schedules,
		balances:             balances,
		logger:               logger,
		consolidationEnabled: true,
	}
}

// SetConsolidationEnabled toggles the schedule consolidation feature
func (s *PlanningService) SetConsolidationEnabled(enabled bool) {
	s.consolidationEnabled = enabled
}

// Generate runs the allocation engine and persists the outcome.
// Previous active plans are deactivated first; a generation run always
// replaces the open planning state.
func (s *PlanningService) Generate(ctx context.Context, input GeneratePlanInput) (*GeneratePlanResult, error) {
	if len(input.Balances) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "At least one daily balance is required")
	}
	if len(input.Debts) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "At least one debt is required")
	}

	domainBalances := make([]planning.DailyBalance, 0, len(input.Balances))
	for _, b := range input.Balances {
		balance, err := planning.NewDailyBalance(b.Date, b.Amount)
		if err != nil {
			return nil, err
		}
		if err := s.balances.Upsert(ctx, balance); err != nil {
			s.logger.Error("Failed to upsert daily balance", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save daily balance")
		}
		domainBalances = append(domainBalances, *balance)
	}

	debts := make([]planning.DebtInput, 0, len(input.Debts))
	for _, d := range input.Debts {
		debts = append(debts, planning.DebtInput{
			EntityName: d.EntityName,
			TotalDebt:  d.TotalDebt,
			PaidAmount: d.PaidAmount,
			Priority:   d.Priority,
			DueDate:    d.DueDate,
		})
	}

	if err := s.retireActivePlans(ctx); err != nil {
		return nil, err
	}

	result, err := s.planner.Generate(ctx, domainBalances, debts)
	if err != nil {
		return nil, err
	}

	if err := s.plans.SaveAll(ctx, result.Plans); err != nil {
		s.logger.Error("Failed to save generated plans", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save payment plans")
	}
	if err := s.schedules.SaveAll(ctx, result.Schedules); err != nil {
		s.logger.Error("Failed to save generated schedules", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save payment schedules")
	}

	s.logger.Info("Payment plans generated",
		zap.Int("plans", len(result.Plans)),
		zap.Int("schedules", len(result.Schedules)),
		zap.String("total_scheduled", result.Summary.TotalScheduled.StringFixed(2)))

	return &GeneratePlanResult{
		Plans:     result.Plans,
		Schedules: result.Schedules,
		Summary:   result.Summary,
	}, nil
}

// retireActivePlans deactivates open plans and drops their unpaid
// schedule entries. Paid entries stay as history.
func (s *PlanningService) retireActivePlans(ctx context.Context) error {
	active, err := s.plans.FindActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load active plans", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load active plans")
	}

	for i := range active {
		plan := &active[i]

		entries, err := s.schedules.FindByPlan(ctx, plan.ID)
		if err != nil {
			s.logger.Error("Failed to load plan schedules", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to retire previous plans")
		}
		for _, entry := range entries {
			if entry.IsPaid {
				continue
			}
			if err := s.schedules.Delete(ctx, entry.ID); err != nil {
				s.logger.Error("Failed to delete unpaid schedule entry", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to retire previous plans")
			}
		}

		plan.Deactivate()
		if err := s.plans.Save(ctx, plan); err != nil {
			s.logger.Error("Failed to deactivate plan", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to retire previous plans")
		}
	}
	return nil
}

// Schedules lists schedule entries matching the query with a completion
// summary
func (s *PlanningService) Schedules(ctx context.Context, input ScheduleQueryInput) (*ScheduleListResult, error) {
	entries, err := s.schedules.FindByQuery(ctx, planning.ScheduleQuery{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		PartyType: input.PartyType,
		PartyID:   input.PartyID,
		IsPaid:    input.IsPaid,
	})
	if err != nil {
		return nil, err
	}

	summary := ScheduleSummary{
		TotalEntries:   len(entries),
		TotalScheduled: decimal.Zero,
		TotalPaid:      decimal.Zero,
	}
	for _, entry := range entries {
		summary.TotalScheduled = summary.TotalScheduled.Add(entry.ScheduledAmount)
		if entry.IsPaid {
			summary.PaidEntries++
			if entry.ActualAmount != nil {
				summary.TotalPaid = summary.TotalPaid.Add(*entry.ActualAmount)
			}
		}
	}
	summary.UnpaidEntries = summary.TotalEntries - summary.PaidEntries

	return &ScheduleListResult{Schedules: entries, Summary: summary}, nil
}

// CompleteSchedule marks a scheduled payment as made and applies the
// amount to its plan
func (s *PlanningService) CompleteSchedule(ctx context.Context, input CompleteScheduleInput) (*CompleteScheduleResult, error) {
	schedule, err := s.schedules.FindByID(ctx, input.ScheduleID)
	if err != nil {
		return nil, err
	}

	applied, err := schedule.MarkCompleted(input.ActualAmount, time.Now())
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.FindByID(ctx, schedule.PlanID)
	if err != nil {
		s.logger.Error("Failed to load plan for completed schedule",
			zap.String("plan_id", schedule.PlanID.String()), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load payment plan")
	}

	if err := plan.RecordPayment(applied); err != nil {
		return nil, err
	}

	if err := s.schedules.Save(ctx, schedule); err != nil {
		s.logger.Error("Failed to save completed schedule", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save schedule")
	}
	if err := s.plans.Save(ctx, plan); err != nil {
		s.logger.Error("Failed to save plan after payment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save payment plan")
	}

	s.logger.Info("Scheduled payment completed",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("plan_id", plan.ID.String()),
		zap.String("amount", applied.StringFixed(2)),
		zap.Bool("plan_settled", plan.IsSettled()))

	return &CompleteScheduleResult{
		Schedule:    schedule,
		Plan:        plan,
		PlanSettled: plan.IsSettled(),
	}, nil
}

// Analytics returns the priority breakdown of active plans and the daily
// utilization of available cash
func (s *PlanningService) Analytics(ctx context.Context) (*AnalyticsResult, error) {
	active, err := s.plans.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	byPriority := make(map[planning.Priority]*PriorityBreakdown)
	for _, plan := range active {
		breakdown, ok := byPriority[plan.Priority]
		if !ok {
			breakdown = &PriorityBreakdown{
				Priority:  plan.Priority,
				Label:     plan.Priority.String(),
				TotalDebt: decimal.Zero,
				Remaining: decimal.Zero,
			}
			byPriority[plan.Priority] = breakdown
		}
		breakdown.PlanCount++
		breakdown.TotalDebt = breakdown.TotalDebt.Add(plan.TotalDebt)
		breakdown.Remaining = breakdown.Remaining.Add(plan.RemainingDebt)
	}

	priorities := make([]PriorityBreakdown, 0, len(byPriority))
	for _, breakdown := range byPriority {
		priorities = append(priorities, *breakdown)
	}
	sort.Slice(priorities, func(i, j int) bool {
		return priorities[i].Priority < priorities[j].Priority
	})

	balances, err := s.balances.FindInRange(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	entries, err := s.schedules.FindByQuery(ctx, planning.ScheduleQuery{})
	if err != nil {
		return nil, err
	}

	scheduledByDate := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		key := entry.ScheduledDate.Format("2006-01-02")
		scheduledByDate[key] = scheduledByDate[key].Add(entry.ScheduledAmount)
	}

	utilization := make([]DailyUtilization, 0, len(balances))
	for _, balance := range balances {
		key := balance.Date.Format("2006-01-02")
		scheduled := scheduledByDate[key]

		rate := 0.0
		if balance.AvailableAmount.IsPositive() {
			rate, _ = scheduled.Div(balance.AvailableAmount).Float64()
		}
		utilization = append(utilization, DailyUtilization{
			Date:        balance.Date,
			Available:   balance.AvailableAmount,
			Scheduled:   scheduled,
			Utilization: rate,
		})
	}

	return &AnalyticsResult{Priorities: priorities, Utilization: utilization}, nil
}

// Optimize consolidates a plan's unpaid schedule entries into fewer,
// larger payments
func (s *PlanningService) Optimize(ctx context.Context, planID uuid.UUID) (*OptimizeResult, error) {
	if !s.consolidationEnabled {
		return nil, shared.NewDomainError("INVALID_STATE", "Schedule consolidation is disabled")
	}
	if _, err := s.plans.FindByID(ctx, planID); err != nil {
		return nil, err
	}

	entries, err := s.schedules.FindByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	unpaid := make([]*planning.PaymentSchedule, 0, len(entries))
	for i := range entries {
		if !entries[i].IsPaid {
			unpaid = append(unpaid, &entries[i])
		}
	}
	before := len(unpaid)

	merged := s.planner.OptimizeSchedule(unpaid)

	kept := make(map[uuid.UUID]bool, len(merged))
	for _, entry := range merged {
		kept[entry.ID] = true
	}
	for _, entry := range unpaid {
		if kept[entry.ID] {
			continue
		}
		if err := s.schedules.Delete(ctx, entry.ID); err != nil {
			s.logger.Error("Failed to delete merged schedule entry", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to optimize schedule")
		}
	}
	if err := s.schedules.SaveAll(ctx, merged); err != nil {
		s.logger.Error("Failed to save optimized schedules", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to optimize schedule")
	}

	s.logger.Info("Schedule optimized",
		zap.String("plan_id", planID.String()),
		zap.Int("before", before),
		zap.Int("after", len(merged)))

	return &OptimizeResult{
		PlanID:    planID,
		Before:    before,
		After:     len(merged),
		Schedules: merged,
	}, nil
}

// ActivePlans returns the currently open payment plans
func (s *PlanningService) ActivePlans(ctx context.Context) ([]planning.PaymentPlan, error) {
	return s.plans.FindActive(ctx)
}

// Balances returns daily balances within the given range
func (s *PlanningService) Balances(ctx context.Context, start, end *time.Time) ([]planning.DailyBalance, error) {
	return s.balances.FindInRange(ctx, start, end)
}
