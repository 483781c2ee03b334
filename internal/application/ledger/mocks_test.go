package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock implementation of ledger.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *ledger.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) FindByName(ctx context.Context, name string) (*ledger.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Customer), args.Error(1)
}

// MockCompanyRepository is a mock implementation of ledger.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Company, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *ledger.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) FindByName(ctx context.Context, name string) (*ledger.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Company), args.Error(1)
}

// MockDebtRepository is a mock implementation of ledger.DebtRepository
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Debt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Debt, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Debt), args.Error(1)
}

func (m *MockDebtRepository) Save(ctx context.Context, debt *ledger.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDebtRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDebtRepository) FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) ([]ledger.Debt, error) {
	args := m.Called(ctx, partyType, partyID)
	return args.Get(0).([]ledger.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindUnsettled(ctx context.Context) ([]ledger.Debt, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ledger.Debt), args.Error(1)
}

// MockActivityRepository is a mock implementation of ledger.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Save(ctx context.Context, activity *ledger.EntityActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]ledger.EntityActivity, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.EntityActivity), args.Error(1)
}

func (m *MockActivityRepository) FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID, filter shared.Filter) ([]ledger.EntityActivity, error) {
	args := m.Called(ctx, partyType, partyID, filter)
	return args.Get(0).([]ledger.EntityActivity), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of ledger.AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Save(ctx context.Context, entry *ledger.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]ledger.AuditLog, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.AuditLog), args.Error(1)
}
