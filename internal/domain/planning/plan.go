package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Priority is the manual urgency level assigned to a payment plan
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// IsValid checks if the priority is a known level
func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// String returns a human-readable priority name
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return "unknown"
}

// PaymentPlan tracks the pay-down of a single debt.
// Invariant: PaidAmount + RemainingDebt always equals TotalDebt.
type PaymentPlan struct {
	shared.BaseAggregateRoot
	PartyType     ledger.PartyType `json:"party_type"`
	PartyID       uuid.UUID        `json:"party_id"`
	PartyName     string           `json:"party_name"`
	TotalDebt     decimal.Decimal  `json:"total_debt"`
	PaidAmount    decimal.Decimal  `json:"paid_amount"`
	RemainingDebt decimal.Decimal  `json:"remaining_debt"`
	Priority      Priority         `json:"priority"`
	DueDate       *time.Time       `json:"due_date"`
	IsActive      bool             `json:"is_active"`
}

// NewPaymentPlan creates a payment plan for a debt with money still owed
func NewPaymentPlan(partyType ledger.PartyType, partyID uuid.UUID, partyName string, totalDebt, paidAmount valueobject.Money, priority Priority, dueDate *time.Time) (*PaymentPlan, error) {
	if !partyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PARTY_TYPE", "Party type must be customer or company")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}
	if partyName == "" {
		return nil, shared.NewDomainError("INVALID_PARTY_NAME", "Party name cannot be empty")
	}
	if !totalDebt.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total debt must be positive")
	}
	if paidAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Paid amount cannot be negative")
	}
	if !priority.IsValid() {
		priority = PriorityMedium
	}

	remaining := totalDebt.Amount().Sub(paidAmount.Amount())
	if !remaining.IsPositive() {
		return nil, shared.NewDomainError("ALREADY_SETTLED", "Debt has no remaining balance to plan")
	}

	return &PaymentPlan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PartyType:         partyType,
		PartyID:           partyID,
		PartyName:         partyName,
		TotalDebt:         totalDebt.Amount(),
		PaidAmount:        paidAmount.Amount(),
		RemainingDebt:     remaining,
		Priority:          priority,
		DueDate:           dueDate,
		IsActive:          true,
	}, nil
}

// ApplyScheduled reserves a scheduled amount against the remaining debt
// during plan generation
func (p *PaymentPlan) ApplyScheduled(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Scheduled amount must be positive")
	}
	if amount.GreaterThan(p.RemainingDebt) {
		return shared.NewDomainError("EXCEEDS_REMAINING", "Scheduled amount exceeds remaining debt")
	}
	p.PaidAmount = p.PaidAmount.Add(amount)
	p.RemainingDebt = p.TotalDebt.Sub(p.PaidAmount)
	p.Touch()
	return nil
}

// RecordPayment applies an actual payment to the plan. Overpayment is
// allowed; the plan settles once nothing remains.
func (p *PaymentPlan) RecordPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	p.PaidAmount = p.PaidAmount.Add(amount)
	p.RemainingDebt = p.TotalDebt.Sub(p.PaidAmount)
	if p.IsSettled() {
		p.IsActive = false
	}
	p.Touch()
	p.IncrementVersion()
	return nil
}

// IsSettled returns true when nothing remains to pay
func (p *PaymentPlan) IsSettled() bool {
	return !p.RemainingDebt.IsPositive()
}

// Deactivate takes the plan out of future allocation rounds
func (p *PaymentPlan) Deactivate() {
	p.IsActive = false
	p.Touch()
	p.IncrementVersion()
}

// CompletionRatio returns paid/total in the range 0..1
func (p *PaymentPlan) CompletionRatio() float64 {
	if !p.TotalDebt.IsPositive() {
		return 0
	}
	ratio, _ := p.PaidAmount.Div(p.TotalDebt).Float64()
	return ratio
}

// DaysOverdue returns the number of days past the due date (0 if none)
func (p *PaymentPlan) DaysOverdue(now time.Time) int {
	if p.DueDate == nil || !p.DueDate.Before(now) {
		return 0
	}
	return int(now.Sub(*p.DueDate).Hours() / 24)
}

// GetRemainingDebtMoney returns the remaining debt as Money
func (p *PaymentPlan) GetRemainingDebtMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.RemainingDebt)
}
