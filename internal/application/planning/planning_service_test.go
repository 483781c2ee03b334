package planning

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPlanningFixture() (*PlanningService, *MockPlanRepository, *MockScheduleRepository, *MockBalanceRepository) {
	plans := new(MockPlanRepository)
	schedules := new(MockScheduleRepository)
	balances := new(MockBalanceRepository)
	planner := planning.NewPlanner(planning.NewPriorityScorer(), newFakeDirectory())
	service := NewPlanningService(planner, plans, schedules, balances, zap.NewNop())
	return service, plans, schedules, balances
}

func day(d int) time.Time {
	return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
}

func mustPlan(t *testing.T, name string, total int64, priority planning.Priority) *planning.PaymentPlan {
	t.Helper()
	plan, err := planning.NewPaymentPlan(ledger.PartyTypeCompany, uuid.New(), name,
		valueobject.NewMoneyUSD(decimal.NewFromInt(total)), valueobject.ZeroUSD(), priority, nil)
	require.NoError(t, err)
	return plan
}

func TestGeneratePersistsPlansAndSchedules(t *testing.T) {
	service, plans, schedules, balances := newPlanningFixture()

	balances.On("Upsert", mock.Anything, mock.AnythingOfType("*planning.DailyBalance")).Return(nil)
	plans.On("FindActive", mock.Anything).Return([]planning.PaymentPlan{}, nil)

	var savedPlans []*planning.PaymentPlan
	plans.On("SaveAll", mock.Anything, mock.AnythingOfType("[]*planning.PaymentPlan")).
		Run(func(args mock.Arguments) {
			savedPlans = args.Get(1).([]*planning.PaymentPlan)
		}).Return(nil)

	var savedSchedules []*planning.PaymentSchedule
	schedules.On("SaveAll", mock.Anything, mock.AnythingOfType("[]*planning.PaymentSchedule")).
		Run(func(args mock.Arguments) {
			savedSchedules = args.Get(1).([]*planning.PaymentSchedule)
		}).Return(nil)

	result, err := service.Generate(context.Background(), GeneratePlanInput{
		Balances: []BalanceInput{
			{Date: day(1), Amount: decimal.NewFromInt(300)},
			{Date: day(2), Amount: decimal.NewFromInt(200)},
		},
		Debts: []DebtPlanInput{
			{EntityName: "Supplier A", TotalDebt: decimal.NewFromInt(1000), Priority: planning.PriorityHigh},
			{EntityName: "Supplier B", TotalDebt: decimal.NewFromInt(400), Priority: planning.PriorityLow},
		},
	})
	require.NoError(t, err)

	assert.Len(t, savedPlans, 2)
	assert.NotEmpty(t, savedSchedules)
	assert.Equal(t, 2, result.Summary.DebtsPlanned)
	assert.True(t, result.Summary.TotalAvailable.Equal(decimal.NewFromInt(500)))

	// Per-day totals never exceed availability
	byDate := make(map[string]decimal.Decimal)
	for _, entry := range savedSchedules {
		key := entry.ScheduledDate.Format("2006-01-02")
		byDate[key] = byDate[key].Add(entry.ScheduledAmount)
	}
	assert.True(t, byDate[day(1).Format("2006-01-02")].LessThanOrEqual(decimal.NewFromInt(300)))
	assert.True(t, byDate[day(2).Format("2006-01-02")].LessThanOrEqual(decimal.NewFromInt(200)))
}

func TestGenerateRetiresPreviousPlans(t *testing.T) {
	service, plans, schedules, balances := newPlanningFixture()

	old := mustPlan(t, "Old Supplier", 900, planning.PriorityMedium)
	unpaid, err := planning.NewPaymentSchedule(old.ID, day(1), decimal.NewFromInt(50))
	require.NoError(t, err)
	paid, err := planning.NewPaymentSchedule(old.ID, day(2), decimal.NewFromInt(60))
	require.NoError(t, err)
	_, err = paid.MarkCompleted(nil, time.Now())
	require.NoError(t, err)

	balances.On("Upsert", mock.Anything, mock.AnythingOfType("*planning.DailyBalance")).Return(nil)
	plans.On("FindActive", mock.Anything).Return([]planning.PaymentPlan{*old}, nil)
	schedules.On("FindByPlan", mock.Anything, old.ID).Return([]planning.PaymentSchedule{*unpaid, *paid}, nil)
	schedules.On("Delete", mock.Anything, unpaid.ID).Return(nil)
	plans.On("Save", mock.Anything, mock.AnythingOfType("*planning.PaymentPlan")).Return(nil)
	plans.On("SaveAll", mock.Anything, mock.AnythingOfType("[]*planning.PaymentPlan")).Return(nil)
	schedules.On("SaveAll", mock.Anything, mock.AnythingOfType("[]*planning.PaymentSchedule")).Return(nil)

	_, err = service.Generate(context.Background(), GeneratePlanInput{
		Balances: []BalanceInput{{Date: day(1), Amount: decimal.NewFromInt(100)}},
		Debts:    []DebtPlanInput{{EntityName: "Supplier A", TotalDebt: decimal.NewFromInt(500), Priority: planning.PriorityHigh}},
	})
	require.NoError(t, err)

	// The unpaid entry is dropped, the paid one is kept as history
	schedules.AssertCalled(t, "Delete", mock.Anything, unpaid.ID)
	schedules.AssertNotCalled(t, "Delete", mock.Anything, paid.ID)
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	service, _, _, _ := newPlanningFixture()

	_, err := service.Generate(context.Background(), GeneratePlanInput{
		Debts: []DebtPlanInput{{EntityName: "X", TotalDebt: decimal.NewFromInt(10)}},
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)

	_, err = service.Generate(context.Background(), GeneratePlanInput{
		Balances: []BalanceInput{{Date: day(1), Amount: decimal.NewFromInt(10)}},
	})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestSchedulesSummarizesCompletion(t *testing.T) {
	service, _, schedules, _ := newPlanningFixture()

	plan := mustPlan(t, "Supplier A", 500, planning.PriorityHigh)
	first, err := planning.NewPaymentSchedule(plan.ID, day(1), decimal.NewFromInt(100))
	require.NoError(t, err)
	second, err := planning.NewPaymentSchedule(plan.ID, day(2), decimal.NewFromInt(150))
	require.NoError(t, err)
	_, err = second.MarkCompleted(nil, time.Now())
	require.NoError(t, err)

	schedules.On("FindByQuery", mock.Anything, mock.AnythingOfType("planning.ScheduleQuery")).
		Return([]planning.PaymentSchedule{*first, *second}, nil)

	result, err := service.Schedules(context.Background(), ScheduleQueryInput{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.TotalEntries)
	assert.Equal(t, 1, result.Summary.PaidEntries)
	assert.Equal(t, 1, result.Summary.UnpaidEntries)
	assert.True(t, result.Summary.TotalScheduled.Equal(decimal.NewFromInt(250)))
	assert.True(t, result.Summary.TotalPaid.Equal(decimal.NewFromInt(150)))
}

func TestCompleteScheduleSettlesPlan(t *testing.T) {
	service, plans, schedules, _ := newPlanningFixture()

	plan := mustPlan(t, "Supplier A", 100, planning.PriorityHigh)
	entry, err := planning.NewPaymentSchedule(plan.ID, day(1), decimal.NewFromInt(100))
	require.NoError(t, err)

	schedules.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	plans.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	schedules.On("Save", mock.Anything, entry).Return(nil)
	plans.On("Save", mock.Anything, plan).Return(nil)

	result, err := service.CompleteSchedule(context.Background(), CompleteScheduleInput{ScheduleID: entry.ID})
	require.NoError(t, err)

	assert.True(t, result.Schedule.IsPaid)
	assert.True(t, result.PlanSettled)
	assert.False(t, result.Plan.IsActive)
	assert.True(t, result.Plan.RemainingDebt.IsZero())
}

func TestCompleteScheduleWithActualAmount(t *testing.T) {
	service, plans, schedules, _ := newPlanningFixture()

	plan := mustPlan(t, "Supplier A", 500, planning.PriorityHigh)
	entry, err := planning.NewPaymentSchedule(plan.ID, day(1), decimal.NewFromInt(100))
	require.NoError(t, err)

	schedules.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	plans.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	schedules.On("Save", mock.Anything, entry).Return(nil)
	plans.On("Save", mock.Anything, plan).Return(nil)

	actual := decimal.NewFromInt(80)
	result, err := service.CompleteSchedule(context.Background(), CompleteScheduleInput{
		ScheduleID:   entry.ID,
		ActualAmount: &actual,
	})
	require.NoError(t, err)

	assert.True(t, result.Plan.PaidAmount.Equal(decimal.NewFromInt(80)))
	assert.True(t, result.Plan.RemainingDebt.Equal(decimal.NewFromInt(420)))
	assert.False(t, result.PlanSettled)
}

func TestCompleteScheduleTwiceFails(t *testing.T) {
	service, plans, schedules, _ := newPlanningFixture()

	plan := mustPlan(t, "Supplier A", 500, planning.PriorityHigh)
	entry, err := planning.NewPaymentSchedule(plan.ID, day(1), decimal.NewFromInt(100))
	require.NoError(t, err)

	schedules.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	plans.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	schedules.On("Save", mock.Anything, entry).Return(nil)
	plans.On("Save", mock.Anything, plan).Return(nil)

	_, err = service.CompleteSchedule(context.Background(), CompleteScheduleInput{ScheduleID: entry.ID})
	require.NoError(t, err)

	_, err = service.CompleteSchedule(context.Background(), CompleteScheduleInput{ScheduleID: entry.ID})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestAnalytics(t *testing.T) {
	service, plans, schedules, balances := newPlanningFixture()

	high := mustPlan(t, "Supplier A", 1000, planning.PriorityHigh)
	low := mustPlan(t, "Supplier B", 200, planning.PriorityLow)
	require.NoError(t, high.RecordPayment(decimal.NewFromInt(400)))

	entry, err := planning.NewPaymentSchedule(high.ID, day(1), decimal.NewFromInt(150))
	require.NoError(t, err)

	balance, err := planning.NewDailyBalance(day(1), decimal.NewFromInt(300))
	require.NoError(t, err)

	plans.On("FindActive", mock.Anything).Return([]planning.PaymentPlan{*high, *low}, nil)
	balances.On("FindInRange", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]planning.DailyBalance{*balance}, nil)
	schedules.On("FindByQuery", mock.Anything, mock.AnythingOfType("planning.ScheduleQuery")).
		Return([]planning.PaymentSchedule{*entry}, nil)

	result, err := service.Analytics(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Priorities, 2)
	assert.Equal(t, planning.PriorityHigh, result.Priorities[0].Priority)
	assert.Equal(t, 1, result.Priorities[0].PlanCount)
	assert.True(t, result.Priorities[0].Remaining.Equal(decimal.NewFromInt(600)))

	require.Len(t, result.Utilization, 1)
	assert.True(t, result.Utilization[0].Scheduled.Equal(decimal.NewFromInt(150)))
	assert.InDelta(t, 0.5, result.Utilization[0].Utilization, 0.0001)
}

func TestOptimizeMergesAdjacentEntries(t *testing.T) {
	service, plans, schedules, _ := newPlanningFixture()

	plan := mustPlan(t, "Supplier A", 500, planning.PriorityHigh)
	first, err := planning.NewPaymentSchedule(plan.ID, day(1), decimal.NewFromInt(30))
	require.NoError(t, err)
	second, err := planning.NewPaymentSchedule(plan.ID, day(2), decimal.NewFromInt(40))
	require.NoError(t, err)

	plans.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	schedules.On("FindByPlan", mock.Anything, plan.ID).Return([]planning.PaymentSchedule{*first, *second}, nil)
	schedules.On("Delete", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)
	schedules.On("SaveAll", mock.Anything, mock.AnythingOfType("[]*planning.PaymentSchedule")).Return(nil)

	result, err := service.Optimize(context.Background(), plan.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Before)
	assert.Equal(t, 1, result.After)
	require.Len(t, result.Schedules, 1)
	assert.True(t, result.Schedules[0].ScheduledAmount.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, day(1), result.Schedules[0].ScheduledDate)
}
