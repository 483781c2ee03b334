package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

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

// fakeDirectory resolves every name to a deterministic company ref
type fakeDirectory struct {
	refs map[string]planning.PartyRef
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{refs: make(map[string]planning.PartyRef)}
}

func (d *fakeDirectory) FindOrCreate(_ context.Context, name string) (planning.PartyRef, error) {
	if ref, ok := d.refs[name]; ok {
		return ref, nil
	}
	ref := planning.PartyRef{Type: ledger.PartyTypeCompany, ID: uuid.New(), Name: name}
	d.refs[name] = ref
	return ref, nil
}
