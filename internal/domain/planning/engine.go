package planning

import (
	"context"
	"sort"
	"time"

	"github.com/marwan-sadiq/deptapp/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DebtInput is one debt to plan payments for
type DebtInput struct {
	EntityName string
	TotalDebt  decimal.Decimal
	PaidAmount decimal.Decimal
	Priority   Priority
	DueDate    *time.Time
}

// PlanSummary aggregates the outcome of a generation run
type PlanSummary struct {
	TotalScheduled  decimal.Decimal `json:"total_scheduled"`
	TotalAvailable  decimal.Decimal `json:"total_available"`
	UtilizationRate float64         `json:"utilization_rate"`
	DaysPlanned     int             `json:"days_planned"`
	DebtsPlanned    int             `json:"debts_planned"`
}

// PlanResult is the full output of a generation run
type PlanResult struct {
	Plans     []*PaymentPlan
	Schedules []*PaymentSchedule
	Summary   PlanSummary
}

// Planner allocates daily cash across payment plans in proportion to
// their priority scores
type Planner struct {
	scorer    *PriorityScorer
	directory PartyDirectory
}

// NewPlanner creates a planner with the given scorer and party directory
func NewPlanner(scorer *PriorityScorer, directory PartyDirectory) *Planner {
	return &Planner{scorer: scorer, directory: directory}
}

// Generate builds payment plans and a day-by-day schedule.
//
// Dates are processed in chronological order. On each day with positive
// availability, every open plan gets availability * score/totalScore,
// capped at its remaining debt and rounded to cents. Shares that round
// to zero are dropped, and rounding dust is left unallocated rather
// than redistributed. The sum scheduled on a day never exceeds that
// day's availability.
func (p *Planner) Generate(ctx context.Context, balances []DailyBalance, debts []DebtInput) (*PlanResult, error) {
	sorted := make([]DailyBalance, len(balances))
	copy(sorted, balances)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	plans := make([]*PaymentPlan, 0, len(debts))
	for _, debt := range debts {
		remaining := debt.TotalDebt.Sub(debt.PaidAmount)
		if !remaining.IsPositive() {
			continue
		}

		party, err := p.directory.FindOrCreate(ctx, debt.EntityName)
		if err != nil {
			return nil, err
		}

		plan, err := NewPaymentPlan(
			party.Type,
			party.ID,
			party.Name,
			valueobject.NewMoneyUSD(debt.TotalDebt),
			valueobject.NewMoneyUSD(debt.PaidAmount),
			debt.Priority,
			debt.DueDate,
		)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	totalAvailable := decimal.Zero
	for _, bal := range sorted {
		totalAvailable = totalAvailable.Add(bal.AvailableAmount)
	}

	schedules := make([]*PaymentSchedule, 0)
	totalScheduled := decimal.Zero

	for _, bal := range sorted {
		available := bal.AvailableAmount
		if !available.IsPositive() {
			continue
		}

		type scoredPlan struct {
			plan  *PaymentPlan
			score float64
		}
		scored := make([]scoredPlan, 0, len(plans))
		totalWeight := 0.0
		for _, plan := range plans {
			if !plan.RemainingDebt.IsPositive() {
				continue
			}
			score := p.scorer.ScorePlan(plan, plan.DaysOverdue(bal.Date))
			scored = append(scored, scoredPlan{plan: plan, score: score})
			totalWeight += score
		}
		if len(scored) == 0 || totalWeight == 0 {
			continue
		}

		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score > scored[j].score
		})

		dayRemaining := available
		for _, sp := range scored {
			if !dayRemaining.IsPositive() {
				break
			}

			share := available.Mul(decimal.NewFromFloat(sp.score / totalWeight))
			amount := share
			if amount.GreaterThan(sp.plan.RemainingDebt) {
				amount = sp.plan.RemainingDebt
			}
			amount = amount.Round(2)
			if amount.GreaterThan(dayRemaining) {
				amount = dayRemaining
			}
			if !amount.IsPositive() {
				continue
			}

			schedule, err := NewPaymentSchedule(sp.plan.ID, bal.Date, amount)
			if err != nil {
				return nil, err
			}
			if err := sp.plan.ApplyScheduled(amount); err != nil {
				return nil, err
			}

			schedules = append(schedules, schedule)
			totalScheduled = totalScheduled.Add(amount)
			dayRemaining = dayRemaining.Sub(amount)
		}
	}

	utilization := 0.0
	if totalAvailable.IsPositive() {
		utilization, _ = totalScheduled.Div(totalAvailable).Float64()
	}

	return &PlanResult{
		Plans:     plans,
		Schedules: schedules,
		Summary: PlanSummary{
			TotalScheduled:  totalScheduled,
			TotalAvailable:  totalAvailable,
			UtilizationRate: utilization,
			DaysPlanned:     len(balances),
			DebtsPlanned:    len(plans),
		},
	}, nil
}
