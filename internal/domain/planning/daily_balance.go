package planning

import (
	"time"

	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DailyBalance is the cash available for debt payments on one date.
// Dates are unique; a non-positive amount is recorded but contributes
// nothing when plans are generated.
type DailyBalance struct {
	shared.BaseEntity
	Date            time.Time       `json:"date"`
	AvailableAmount decimal.Decimal `json:"available_amount"`
}

// NewDailyBalance creates a daily balance entry
func NewDailyBalance(date time.Time, amount decimal.Decimal) (*DailyBalance, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Balance date cannot be empty")
	}

	return &DailyBalance{
		BaseEntity:      shared.NewBaseEntity(),
		Date:            date,
		AvailableAmount: amount,
	}, nil
}

// SetAvailableAmount replaces the amount for this date
func (b *DailyBalance) SetAvailableAmount(amount decimal.Decimal) {
	b.AvailableAmount = amount
	b.Touch()
}
