package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PartyType identifies which kind of party a debt belongs to
type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeCompany  PartyType = "company"
)

// IsValid checks if the party type is valid
func (p PartyType) IsValid() bool {
	return p == PartyTypeCustomer || p == PartyTypeCompany
}

// String returns the string representation of PartyType
func (p PartyType) String() string {
	return string(p)
}

// Debt represents a single ledger entry for a party.
// A positive amount is money owed; a negative amount records a payment.
type Debt struct {
	shared.BaseAggregateRoot
	PartyType PartyType       `json:"party_type"`
	PartyID   uuid.UUID       `json:"party_id"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	DueDate   *time.Time      `json:"due_date"`
	IsSettled bool            `json:"is_settled"`
}

// NewDebt creates a new debt entry
func NewDebt(partyType PartyType, partyID uuid.UUID, amount valueobject.Money, note string, dueDate *time.Time) (*Debt, error) {
	if !partyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PARTY_TYPE", "Party type must be customer or company")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}
	if amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Debt amount cannot be zero")
	}
	if len(note) > 255 {
		return nil, shared.NewDomainError("INVALID_NOTE", "Note cannot exceed 255 characters")
	}

	return &Debt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PartyType:         partyType,
		PartyID:           partyID,
		Amount:            amount.Amount(),
		Note:              note,
		DueDate:           dueDate,
	}, nil
}

// NewPaymentEntry creates a payment against a party's balance,
// stored as a debt row with a negated amount.
func NewPaymentEntry(partyType PartyType, partyID uuid.UUID, amount valueobject.Money, note string) (*Debt, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	return NewDebt(partyType, partyID, amount.Negate(), note, nil)
}

// IsPayment returns true if this entry records a payment
func (d *Debt) IsPayment() bool {
	return d.Amount.IsNegative()
}

// IsOverdue returns true if the debt is unsettled and past its due date
func (d *Debt) IsOverdue(now time.Time) bool {
	if d.IsSettled || d.DueDate == nil {
		return false
	}
	return d.DueDate.Before(now)
}

// DaysOverdue returns the number of days past due (0 if not overdue)
func (d *Debt) DaysOverdue(now time.Time) int {
	if !d.IsOverdue(now) {
		return 0
	}
	return int(now.Sub(*d.DueDate).Hours() / 24)
}

// Settle marks the debt as settled
func (d *Debt) Settle() error {
	if d.IsSettled {
		return shared.NewDomainError("INVALID_STATE", "Debt is already settled")
	}
	d.IsSettled = true
	d.Touch()
	d.IncrementVersion()
	return nil
}

// SetNote updates the note
func (d *Debt) SetNote(note string) error {
	if len(note) > 255 {
		return shared.NewDomainError("INVALID_NOTE", "Note cannot exceed 255 characters")
	}
	d.Note = note
	d.Touch()
	d.IncrementVersion()
	return nil
}

// SetDueDate updates the due date
func (d *Debt) SetDueDate(dueDate *time.Time) {
	d.DueDate = dueDate
	d.Touch()
	d.IncrementVersion()
}

// GetAmountMoney returns the amount as Money
func (d *Debt) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(d.Amount)
}

// OutstandingTotal sums the amounts of unsettled debts
func OutstandingTotal(debts []Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if !d.IsSettled {
			total = total.Add(d.Amount)
		}
	}
	return total
}
