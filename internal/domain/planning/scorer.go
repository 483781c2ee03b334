package planning

import (
	"math"

	"github.com/shopspring/decimal"
)

// ScorerOptions enables extra boosts on top of the base priority score
type ScorerOptions struct {
	// OverdueBoost raises the score by 10% per day overdue
	OverdueBoost bool
	// CompletionBoost raises the score by up to 50% as a plan nears
	// completion, so almost-settled debts get closed out first
	CompletionBoost bool
}

// PriorityScorer computes allocation scores for payment plans.
// The base score is the priority weight scaled by the logarithmic
// magnitude of the remaining debt, so a debt ten times larger scores
// one magnitude step higher instead of ten times higher.
type PriorityScorer struct {
	weights map[Priority]float64
	opts    ScorerOptions
}

// NewPriorityScorer creates a scorer with the default priority weights
func NewPriorityScorer() *PriorityScorer {
	return NewPriorityScorerWithOptions(ScorerOptions{})
}

// NewPriorityScorerWithOptions creates a scorer with extra boosts enabled
func NewPriorityScorerWithOptions(opts ScorerOptions) *PriorityScorer {
	return &PriorityScorer{
		weights: map[Priority]float64{
			PriorityHigh:   3.0,
			PriorityMedium: 2.0,
			PriorityLow:    1.0,
		},
		opts: opts,
	}
}

// Score returns the allocation score for a debt. Settled debts score zero.
func (s *PriorityScorer) Score(totalDebt, paidAmount decimal.Decimal, priority Priority, daysOverdue int) float64 {
	remaining := totalDebt.Sub(paidAmount)
	if !remaining.IsPositive() {
		return 0
	}

	weight, ok := s.weights[priority]
	if !ok {
		weight = s.weights[PriorityMedium]
	}

	r, _ := remaining.Float64()
	score := weight * (math.Log10(math.Max(r, 1)) + 1)

	if s.opts.OverdueBoost && daysOverdue > 0 {
		score *= 1.0 + float64(daysOverdue)*0.1
	}
	if s.opts.CompletionBoost && totalDebt.IsPositive() {
		ratio, _ := paidAmount.Div(totalDebt).Float64()
		score *= 1.0 + ratio*0.5
	}

	return score
}

// ScorePlan returns the allocation score for a payment plan
func (s *PriorityScorer) ScorePlan(plan *PaymentPlan, daysOverdue int) float64 {
	return s.Score(plan.TotalDebt, plan.PaidAmount, plan.Priority, daysOverdue)
}
