package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// CreatePartyInput contains the input for creating a customer or company
type CreatePartyInput struct {
	Name    string
	Phone   string
	Address string
}

// UpdatePartyInput contains the input for updating a customer or company
type UpdatePartyInput struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Address string
}

// CustomerDetail bundles a customer with their ledger state
type CustomerDetail struct {
	Customer       *ledger.Customer      `json:"customer"`
	Debts          []ledger.Debt         `json:"debts"`
	Outstanding    decimal.Decimal       `json:"outstanding"`
	CreditDecision ledger.CreditDecision `json:"credit_decision"`
}

// CompanyDetail bundles a company with its ledger state
type CompanyDetail struct {
	Company     *ledger.Company `json:"company"`
	Debts       []ledger.Debt   `json:"debts"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// CreateDebtInput contains the input for recording a new debt
type CreateDebtInput struct {
	PartyType ledger.PartyType
	PartyID   uuid.UUID
	Amount    decimal.Decimal
	Note      string
	DueDate   *time.Time
}

// UpdateDebtInput contains the input for updating a debt entry
type UpdateDebtInput struct {
	ID      uuid.UUID
	Note    *string
	DueDate *time.Time
}

// RecordPaymentInput contains the input for recording a payment
type RecordPaymentInput struct {
	PartyType ledger.PartyType
	PartyID   uuid.UUID
	Amount    decimal.Decimal
	Note      string
}
