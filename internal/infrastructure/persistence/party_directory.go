package persistence

import (
	"context"
	"errors"

	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
)

// GormPartyDirectory resolves party names against the ledger during plan
// generation. Companies are checked first, then customers; an unknown name
// becomes a new company record, since planned payouts usually go to suppliers.
type GormPartyDirectory struct {
	companies ledger.CompanyRepository
	customers ledger.CustomerRepository
}

// NewGormPartyDirectory creates a new GormPartyDirectory
func NewGormPartyDirectory(companies ledger.CompanyRepository, customers ledger.CustomerRepository) *GormPartyDirectory {
	return &GormPartyDirectory{companies: companies, customers: customers}
}

// FindOrCreate resolves a party name to an existing ledger party, creating
// a company when the name is unknown
func (d *GormPartyDirectory) FindOrCreate(ctx context.Context, name string) (planning.PartyRef, error) {
	company, err := d.companies.FindByName(ctx, name)
	if err == nil {
		return planning.PartyRef{
			Type: ledger.PartyTypeCompany,
			ID:   company.ID,
			Name: company.Name,
		}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return planning.PartyRef{}, err
	}

	customer, err := d.customers.FindByName(ctx, name)
	if err == nil {
		return planning.PartyRef{
			Type: ledger.PartyTypeCustomer,
			ID:   customer.ID,
			Name: customer.Name,
		}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return planning.PartyRef{}, err
	}

	created, err := ledger.NewCompany(name, "", "")
	if err != nil {
		return planning.PartyRef{}, err
	}
	if err := d.companies.Save(ctx, created); err != nil {
		return planning.PartyRef{}, err
	}

	return planning.PartyRef{
		Type: ledger.PartyTypeCompany,
		ID:   created.ID,
		Name: created.Name,
	}, nil
}

// Ensure GormPartyDirectory implements PartyDirectory
var _ planning.PartyDirectory = (*GormPartyDirectory)(nil)
