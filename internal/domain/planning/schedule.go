package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentSchedule is a single planned payment on a specific date
type PaymentSchedule struct {
	shared.BaseAggregateRoot
	PlanID          uuid.UUID        `json:"plan_id"`
	ScheduledDate   time.Time        `json:"scheduled_date"`
	ScheduledAmount decimal.Decimal  `json:"scheduled_amount"`
	ActualAmount    *decimal.Decimal `json:"actual_amount"`
	IsPaid          bool             `json:"is_paid"`
	PaidAt          *time.Time       `json:"paid_at"`
}

// NewPaymentSchedule creates a scheduled payment entry.
// Zero or negative amounts are never valid schedule entries.
func NewPaymentSchedule(planID uuid.UUID, scheduledDate time.Time, amount decimal.Decimal) (*PaymentSchedule, error) {
	if planID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLAN", "Plan ID cannot be empty")
	}
	if scheduledDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Scheduled date cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Scheduled amount must be positive")
	}

	return &PaymentSchedule{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PlanID:            planID,
		ScheduledDate:     scheduledDate,
		ScheduledAmount:   amount,
	}, nil
}

// MarkCompleted marks the payment as made. When actual is nil the
// scheduled amount is taken as paid. Returns the applied amount.
func (s *PaymentSchedule) MarkCompleted(actual *decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if s.IsPaid {
		return decimal.Zero, shared.NewDomainError("INVALID_STATE", "Payment is already completed")
	}

	amount := s.ScheduledAmount
	if actual != nil {
		if !actual.IsPositive() {
			return decimal.Zero, shared.NewDomainError("INVALID_AMOUNT", "Actual amount must be positive")
		}
		amount = *actual
	}

	s.ActualAmount = &amount
	s.IsPaid = true
	s.PaidAt = &now
	s.Touch()
	s.IncrementVersion()
	return amount, nil
}
