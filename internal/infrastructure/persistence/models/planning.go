package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/shopspring/decimal"
)

// PaymentPlanModel is the persistence model for planning.PaymentPlan
type PaymentPlanModel struct {
	AggregateModel
	PartyType     string          `gorm:"type:varchar(20);not null;index:idx_plans_party"`
	PartyID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_plans_party"`
	PartyName     string          `gorm:"type:varchar(200);not null"`
	TotalDebt     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	RemainingDebt decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Priority      int             `gorm:"not null;default:2"`
	DueDate       *time.Time      `gorm:"index"`
	IsActive      bool            `gorm:"not null;default:true;index"`
}

// TableName specifies the table name
func (PaymentPlanModel) TableName() string {
	return "payment_plans"
}

// ToDomain converts the model to a domain payment plan
func (m *PaymentPlanModel) ToDomain() *planning.PaymentPlan {
	return &planning.PaymentPlan{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PartyType:         ledger.PartyType(m.PartyType),
		PartyID:           m.PartyID,
		PartyName:         m.PartyName,
		TotalDebt:         m.TotalDebt,
		PaidAmount:        m.PaidAmount,
		RemainingDebt:     m.RemainingDebt,
		Priority:          planning.Priority(m.Priority),
		DueDate:           m.DueDate,
		IsActive:          m.IsActive,
	}
}

// PaymentPlanModelFromDomain converts a domain payment plan to a persistence model
func PaymentPlanModelFromDomain(p *planning.PaymentPlan) *PaymentPlanModel {
	m := &PaymentPlanModel{
		PartyType:     p.PartyType.String(),
		PartyID:       p.PartyID,
		PartyName:     p.PartyName,
		TotalDebt:     p.TotalDebt,
		PaidAmount:    p.PaidAmount,
		RemainingDebt: p.RemainingDebt,
		Priority:      int(p.Priority),
		DueDate:       p.DueDate,
		IsActive:      p.IsActive,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}

// PaymentScheduleModel is the persistence model for planning.PaymentSchedule
type PaymentScheduleModel struct {
	AggregateModel
	PlanID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	ScheduledDate   time.Time        `gorm:"not null;index"`
	ScheduledAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	ActualAmount    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	IsPaid          bool             `gorm:"not null;default:false;index"`
	PaidAt          *time.Time
}

// TableName specifies the table name
func (PaymentScheduleModel) TableName() string {
	return "payment_schedules"
}

// ToDomain converts the model to a domain schedule entry
func (m *PaymentScheduleModel) ToDomain() *planning.PaymentSchedule {
	return &planning.PaymentSchedule{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PlanID:            m.PlanID,
		ScheduledDate:     m.ScheduledDate,
		ScheduledAmount:   m.ScheduledAmount,
		ActualAmount:      m.ActualAmount,
		IsPaid:            m.IsPaid,
		PaidAt:            m.PaidAt,
	}
}

// PaymentScheduleModelFromDomain converts a domain schedule entry to a persistence model
func PaymentScheduleModelFromDomain(s *planning.PaymentSchedule) *PaymentScheduleModel {
	m := &PaymentScheduleModel{
		PlanID:          s.PlanID,
		ScheduledDate:   s.ScheduledDate,
		ScheduledAmount: s.ScheduledAmount,
		ActualAmount:    s.ActualAmount,
		IsPaid:          s.IsPaid,
		PaidAt:          s.PaidAt,
	}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}

// DailyBalanceModel is the persistence model for planning.DailyBalance.
// Dates are unique to keep one balance row per day.
type DailyBalanceModel struct {
	BaseModel
	Date            time.Time       `gorm:"not null;uniqueIndex"`
	AvailableAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName specifies the table name
func (DailyBalanceModel) TableName() string {
	return "daily_balances"
}

// ToDomain converts the model to a domain daily balance
func (m *DailyBalanceModel) ToDomain() *planning.DailyBalance {
	return &planning.DailyBalance{
		BaseEntity:      m.BaseModel.ToDomain(),
		Date:            m.Date,
		AvailableAmount: m.AvailableAmount,
	}
}

// DailyBalanceModelFromDomain converts a domain daily balance to a persistence model
func DailyBalanceModelFromDomain(b *planning.DailyBalance) *DailyBalanceModel {
	m := &DailyBalanceModel{
		Date:            b.Date,
		AvailableAmount: b.AvailableAmount,
	}
	m.FromDomainBaseEntity(b.BaseEntity)
	return m
}
