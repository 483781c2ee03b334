package ledger

import (
	"fmt"
	"time"

	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Reputation represents a customer's creditworthiness tier
type Reputation string

const (
	ReputationExcellent Reputation = "excellent"
	ReputationGood      Reputation = "good"
	ReputationFair      Reputation = "fair"
	ReputationPoor      Reputation = "poor"
	ReputationBad       Reputation = "bad"
)

// IsValid checks if the reputation tier is valid
func (r Reputation) IsValid() bool {
	switch r {
	case ReputationExcellent, ReputationGood, ReputationFair, ReputationPoor, ReputationBad:
		return true
	}
	return false
}

// String returns the string representation of Reputation
func (r Reputation) String() string {
	return string(r)
}

// PaymentWindow is the observation period for payment behavior.
// Payments and debt age are judged against this window.
const PaymentWindow = 30 * 24 * time.Hour

// Customer represents a debtor tracked in the ledger.
// Reputation is derived from payment behavior within the payment window.
type Customer struct {
	shared.BaseAggregateRoot
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	TotalDebt       decimal.Decimal `json:"total_debt"`
	Reputation      Reputation      `json:"reputation"`
	ReputationScore int             `json:"reputation_score"` // 0-100 scale
	LastPaymentAt   *time.Time      `json:"last_payment_at"`
	TotalPaid30Days decimal.Decimal `json:"total_paid_30_days"`
}

// NewCustomer creates a new customer
func NewCustomer(name, phone, address string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		Address:           address,
		TotalDebt:         decimal.Zero,
		Reputation:        ReputationFair,
		ReputationScore:   50,
		TotalPaid30Days:   decimal.Zero,
	}, nil
}

// Rename changes the customer name
func (c *Customer) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	c.Name = name
	c.Touch()
	c.IncrementVersion()
	return nil
}

// UpdateContact updates the customer's contact details
func (c *Customer) UpdateContact(phone, address string) {
	c.Phone = phone
	c.Address = address
	c.Touch()
	c.IncrementVersion()
}

// RecalculateTotalDebt recomputes the running debt total from the given debts
func (c *Customer) RecalculateTotalDebt(debts []Debt) {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount)
	}
	c.TotalDebt = total
	c.Touch()
}

// UpdateReputation recalculates the reputation score from the customer's
// debts. Payments are debt rows with negative amounts. The score reflects
// how much of the outstanding balance was paid within the payment window.
func (c *Customer) UpdateReputation(debts []Debt, now time.Time) {
	windowStart := now.Add(-PaymentWindow)

	totalPaid := decimal.Zero
	var lastPayment *time.Time
	for _, d := range debts {
		if d.IsPayment() && !d.CreatedAt.Before(windowStart) {
			totalPaid = totalPaid.Add(d.Amount.Abs())
			if lastPayment == nil || d.CreatedAt.After(*lastPayment) {
				t := d.CreatedAt
				lastPayment = &t
			}
		}
	}
	c.TotalPaid30Days = totalPaid
	if lastPayment != nil {
		c.LastPaymentAt = lastPayment
	}

	currentDebt := decimal.Zero
	var oldest *Debt
	for i, d := range debts {
		if d.IsSettled {
			continue
		}
		currentDebt = currentDebt.Add(d.Amount)
		if oldest == nil || d.CreatedAt.Before(oldest.CreatedAt) {
			oldest = &debts[i]
		}
	}

	switch {
	case currentDebt.IsZero():
		// Nothing outstanding
		c.ReputationScore = 100
		c.Reputation = ReputationExcellent
	case oldest != nil && oldest.CreatedAt.Before(windowStart):
		if totalPaid.IsPositive() {
			ratio, _ := totalPaid.Div(currentDebt.Add(totalPaid)).Float64()
			switch {
			case ratio >= 0.5:
				c.ReputationScore = 80
				c.Reputation = ReputationGood
			case ratio >= 0.25:
				c.ReputationScore = 60
				c.Reputation = ReputationFair
			default:
				c.ReputationScore = 30
				c.Reputation = ReputationPoor
			}
		} else {
			// Old debt, no payments at all
			c.ReputationScore = 10
			c.Reputation = ReputationBad
		}
	default:
		// Debt is younger than the window; give them time
		c.ReputationScore = 70
		c.Reputation = ReputationGood
	}

	c.Touch()
}

// CreditDecision is the outcome of a new-debt credit check
type CreditDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// CanReceiveNewDebt decides whether the customer may take on new debt.
// Overdue unsettled debts block new credit. Customers younger than the
// payment window get a grace period before payment history is required.
func (c *Customer) CanReceiveNewDebt(debts []Debt, now time.Time) CreditDecision {
	windowStart := now.Add(-PaymentWindow)
	today := now

	currentDebt := decimal.Zero
	for _, d := range debts {
		if !d.IsSettled {
			currentDebt = currentDebt.Add(d.Amount)
		}
	}

	if !currentDebt.IsPositive() {
		if currentDebt.IsNegative() {
			return CreditDecision{
				Allowed: true,
				Reason:  fmt.Sprintf("Customer is overpaid by %s - can receive new debt", currentDebt.Abs().StringFixed(2)),
			}
		}
		return CreditDecision{Allowed: true, Reason: "Customer has no debt"}
	}

	overdueCount := 0
	for _, d := range debts {
		if d.IsOverdue(today) {
			overdueCount++
		}
	}
	if overdueCount > 0 {
		return CreditDecision{
			Allowed: false,
			Reason:  fmt.Sprintf("Customer has %d overdue payment(s) - must pay before receiving new debt", overdueCount),
		}
	}

	if c.CreatedAt.After(windowStart) {
		return CreditDecision{Allowed: true, Reason: "New customer - can receive new debt"}
	}

	totalPaid := decimal.Zero
	for _, d := range debts {
		if d.IsPayment() && !d.CreatedAt.Before(windowStart) {
			totalPaid = totalPaid.Add(d.Amount.Abs())
		}
	}
	if totalPaid.IsPositive() {
		return CreditDecision{
			Allowed: true,
			Reason:  fmt.Sprintf("Customer paid %s in last 30 days", totalPaid.StringFixed(2)),
		}
	}

	return CreditDecision{
		Allowed: false,
		Reason:  "Customer has not made any payments in the last 30 days",
	}
}

// GetTotalDebtMoney returns the running debt total as Money
func (c *Customer) GetTotalDebtMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(c.TotalDebt)
}
