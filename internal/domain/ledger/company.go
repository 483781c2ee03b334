package ledger

import (
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Company represents a supplier or business the shop owes money to
type Company struct {
	shared.BaseAggregateRoot
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	TotalDebt decimal.Decimal `json:"total_debt"`
}

// NewCompany creates a new company
func NewCompany(name, phone, address string) (*Company, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}

	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		Address:           address,
		TotalDebt:         decimal.Zero,
	}, nil
}

// Rename changes the company name
func (c *Company) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	c.Name = name
	c.Touch()
	c.IncrementVersion()
	return nil
}

// UpdateContact updates the company's contact details
func (c *Company) UpdateContact(phone, address string) {
	c.Phone = phone
	c.Address = address
	c.Touch()
	c.IncrementVersion()
}

// RecalculateTotalDebt recomputes the running debt total from the given debts
func (c *Company) RecalculateTotalDebt(debts []Debt) {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount)
	}
	c.TotalDebt = total
	c.Touch()
}

// GetTotalDebtMoney returns the running debt total as Money
func (c *Company) GetTotalDebtMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(c.TotalDebt)
}
