package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for ledger.Customer
type CustomerModel struct {
	AggregateModel
	Name            string          `gorm:"type:varchar(200);not null;index"`
	Phone           string          `gorm:"type:varchar(50)"`
	Address         string          `gorm:"type:varchar(255)"`
	TotalDebt       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Reputation      string          `gorm:"type:varchar(20);not null;default:'fair'"`
	ReputationScore int             `gorm:"not null;default:50"`
	LastPaymentAt   *time.Time
	TotalPaid30Days decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName specifies the table name
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to a domain customer
func (m *CustomerModel) ToDomain() *ledger.Customer {
	return &ledger.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Phone:             m.Phone,
		Address:           m.Address,
		TotalDebt:         m.TotalDebt,
		Reputation:        ledger.Reputation(m.Reputation),
		ReputationScore:   m.ReputationScore,
		LastPaymentAt:     m.LastPaymentAt,
		TotalPaid30Days:   m.TotalPaid30Days,
	}
}

// CustomerModelFromDomain converts a domain customer to a persistence model
func CustomerModelFromDomain(c *ledger.Customer) *CustomerModel {
	m := &CustomerModel{
		Name:            c.Name,
		Phone:           c.Phone,
		Address:         c.Address,
		TotalDebt:       c.TotalDebt,
		Reputation:      c.Reputation.String(),
		ReputationScore: c.ReputationScore,
		LastPaymentAt:   c.LastPaymentAt,
		TotalPaid30Days: c.TotalPaid30Days,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}

// CompanyModel is the persistence model for ledger.Company
type CompanyModel struct {
	AggregateModel
	Name      string          `gorm:"type:varchar(200);not null;index"`
	Phone     string          `gorm:"type:varchar(50)"`
	Address   string          `gorm:"type:varchar(255)"`
	TotalDebt decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName specifies the table name
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the model to a domain company
func (m *CompanyModel) ToDomain() *ledger.Company {
	return &ledger.Company{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Phone:             m.Phone,
		Address:           m.Address,
		TotalDebt:         m.TotalDebt,
	}
}

// CompanyModelFromDomain converts a domain company to a persistence model
func CompanyModelFromDomain(c *ledger.Company) *CompanyModel {
	m := &CompanyModel{
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		TotalDebt: c.TotalDebt,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}

// DebtModel is the persistence model for ledger.Debt.
// Negative amounts record payments.
type DebtModel struct {
	AggregateModel
	PartyType string          `gorm:"type:varchar(20);not null;index:idx_debts_party"`
	PartyID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_debts_party"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Note      string          `gorm:"type:varchar(255)"`
	DueDate   *time.Time      `gorm:"index"`
	IsSettled bool            `gorm:"not null;default:false;index"`
}

// TableName specifies the table name
func (DebtModel) TableName() string {
	return "debts"
}

// ToDomain converts the model to a domain debt entry
func (m *DebtModel) ToDomain() *ledger.Debt {
	return &ledger.Debt{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PartyType:         ledger.PartyType(m.PartyType),
		PartyID:           m.PartyID,
		Amount:            m.Amount,
		Note:              m.Note,
		DueDate:           m.DueDate,
		IsSettled:         m.IsSettled,
	}
}

// DebtModelFromDomain converts a domain debt entry to a persistence model
func DebtModelFromDomain(d *ledger.Debt) *DebtModel {
	m := &DebtModel{
		PartyType: d.PartyType.String(),
		PartyID:   d.PartyID,
		Amount:    d.Amount,
		Note:      d.Note,
		DueDate:   d.DueDate,
		IsSettled: d.IsSettled,
	}
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	return m
}

// EntityActivityModel is the persistence model for ledger.EntityActivity
type EntityActivityModel struct {
	BaseModel
	PartyType    string           `gorm:"type:varchar(20);not null;index:idx_activities_party"`
	PartyID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_activities_party"`
	ActivityType string           `gorm:"type:varchar(30);not null"`
	Description  string           `gorm:"type:varchar(255)"`
	Amount       *decimal.Decimal `gorm:"type:decimal(12,2)"`
	RelatedType  string           `gorm:"type:varchar(30)"`
	RelatedID    *uuid.UUID       `gorm:"type:uuid"`
}

// TableName specifies the table name
func (EntityActivityModel) TableName() string {
	return "entity_activities"
}

// ToDomain converts the model to a domain activity entry
func (m *EntityActivityModel) ToDomain() *ledger.EntityActivity {
	return &ledger.EntityActivity{
		BaseEntity:   m.BaseModel.ToDomain(),
		PartyType:    ledger.PartyType(m.PartyType),
		PartyID:      m.PartyID,
		ActivityType: ledger.ActivityType(m.ActivityType),
		Description:  m.Description,
		Amount:       m.Amount,
		RelatedType:  m.RelatedType,
		RelatedID:    m.RelatedID,
	}
}

// EntityActivityModelFromDomain converts a domain activity entry to a persistence model
func EntityActivityModelFromDomain(a *ledger.EntityActivity) *EntityActivityModel {
	m := &EntityActivityModel{
		PartyType:    a.PartyType.String(),
		PartyID:      a.PartyID,
		ActivityType: a.ActivityType.String(),
		Description:  a.Description,
		Amount:       a.Amount,
		RelatedType:  a.RelatedType,
		RelatedID:    a.RelatedID,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}

// AuditLogModel is the persistence model for ledger.AuditLog
type AuditLogModel struct {
	BaseModel
	Action      string           `gorm:"type:varchar(10);not null"`
	EntityType  string           `gorm:"type:varchar(30);not null;index"`
	EntityID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Description string           `gorm:"type:varchar(255)"`
	Amount      *decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the table name
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts the model to a domain audit log entry
func (m *AuditLogModel) ToDomain() *ledger.AuditLog {
	return &ledger.AuditLog{
		BaseEntity:  m.BaseModel.ToDomain(),
		Action:      ledger.AuditAction(m.Action),
		EntityType:  m.EntityType,
		EntityID:    m.EntityID,
		Description: m.Description,
		Amount:      m.Amount,
	}
}

// AuditLogModelFromDomain converts a domain audit log entry to a persistence model
func AuditLogModelFromDomain(e *ledger.AuditLog) *AuditLogModel {
	m := &AuditLogModel{
		Action:      string(e.Action),
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Description: e.Description,
		Amount:      e.Amount,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}
