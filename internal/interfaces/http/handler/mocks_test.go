package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/identity"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

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

// MockPlanRepository is a mock implementation of planning.PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.PaymentPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.PaymentPlan), args.Error(1)
}

func (m *MockPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.PaymentPlan, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]planning.PaymentPlan), args.Error(1)
}

func (m *MockPlanRepository) Save(ctx context.Context, plan *planning.PaymentPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlanRepository) FindActive(ctx context.Context) ([]planning.PaymentPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]planning.PaymentPlan), args.Error(1)
}

func (m *MockPlanRepository) FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) ([]planning.PaymentPlan, error) {
	args := m.Called(ctx, partyType, partyID)
	return args.Get(0).([]planning.PaymentPlan), args.Error(1)
}

func (m *MockPlanRepository) SaveAll(ctx context.Context, plans []*planning.PaymentPlan) error {
	args := m.Called(ctx, plans)
	return args.Error(0)
}

// MockScheduleRepository is a mock implementation of planning.ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.PaymentSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.PaymentSchedule), args.Error(1)
}

func (m *MockScheduleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.PaymentSchedule, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]planning.PaymentSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Save(ctx context.Context, schedule *planning.PaymentSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) FindByQuery(ctx context.Context, query planning.ScheduleQuery) ([]planning.PaymentSchedule, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]planning.PaymentSchedule), args.Error(1)
}

func (m *MockScheduleRepository) FindByPlan(ctx context.Context, planID uuid.UUID) ([]planning.PaymentSchedule, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).([]planning.PaymentSchedule), args.Error(1)
}

func (m *MockScheduleRepository) SaveAll(ctx context.Context, schedules []*planning.PaymentSchedule) error {
	args := m.Called(ctx, schedules)
	return args.Error(0)
}

func (m *MockScheduleRepository) DeleteByPlan(ctx context.Context, planID uuid.UUID) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

// MockBalanceRepository is a mock implementation of planning.DailyBalanceRepository
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) Upsert(ctx context.Context, balance *planning.DailyBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockBalanceRepository) FindByDate(ctx context.Context, date time.Time) (*planning.DailyBalance, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.DailyBalance), args.Error(1)
}

func (m *MockBalanceRepository) FindInRange(ctx context.Context, start, end *time.Time) ([]planning.DailyBalance, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]planning.DailyBalance), args.Error(1)
}

// stubDirectory resolves every name to a deterministic company ref
type stubDirectory struct{}

func (stubDirectory) FindOrCreate(_ context.Context, name string) (planning.PartyRef, error) {
	return planning.PartyRef{Type: ledger.PartyTypeCompany, ID: uuid.New(), Name: name}, nil
}
