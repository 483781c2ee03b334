package ledger

import (
	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ActivityType classifies an entry in a party's activity trail
type ActivityType string

const (
	ActivityDebtCreated    ActivityType = "debt_created"
	ActivityDebtUpdated    ActivityType = "debt_updated"
	ActivityDebtDeleted    ActivityType = "debt_deleted"
	ActivityPaymentMade    ActivityType = "payment_made"
	ActivityProfileCreated ActivityType = "profile_created"
	ActivityProfileUpdated ActivityType = "profile_updated"
	ActivityProfileDeleted ActivityType = "profile_deleted"
)

// IsValid checks if the activity type is valid
func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityDebtCreated, ActivityDebtUpdated, ActivityDebtDeleted,
		ActivityPaymentMade, ActivityProfileCreated, ActivityProfileUpdated,
		ActivityProfileDeleted:
		return true
	}
	return false
}

// String returns the string representation of ActivityType
func (a ActivityType) String() string {
	return string(a)
}

// EntityActivity records an event in a party's history
type EntityActivity struct {
	shared.BaseEntity
	PartyType    PartyType        `json:"party_type"`
	PartyID      uuid.UUID        `json:"party_id"`
	ActivityType ActivityType     `json:"activity_type"`
	Description  string           `json:"description"`
	Amount       *decimal.Decimal `json:"amount"`
	RelatedType  string           `json:"related_type"`
	RelatedID    *uuid.UUID       `json:"related_id"`
}

// NewEntityActivity creates a new activity entry for a party
func NewEntityActivity(partyType PartyType, partyID uuid.UUID, activityType ActivityType, description string, amount *decimal.Decimal) (*EntityActivity, error) {
	if !partyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PARTY_TYPE", "Party type must be customer or company")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}
	if !activityType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACTIVITY_TYPE", "Activity type is not valid")
	}
	if len(description) > 255 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 255 characters")
	}

	return &EntityActivity{
		BaseEntity:   shared.NewBaseEntity(),
		PartyType:    partyType,
		PartyID:      partyID,
		ActivityType: activityType,
		Description:  description,
		Amount:       amount,
	}, nil
}

// WithRelated attaches a reference to the object that triggered the activity
func (a *EntityActivity) WithRelated(relatedType string, relatedID uuid.UUID) *EntityActivity {
	a.RelatedType = relatedType
	a.RelatedID = &relatedID
	return a
}

// AuditAction is the kind of change an audit log entry records
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionDelete AuditAction = "delete"
)

// IsValid checks if the audit action is valid
func (a AuditAction) IsValid() bool {
	return a == AuditActionCreate || a == AuditActionDelete
}

// AuditLog records creations and deletions of ledger entities
type AuditLog struct {
	shared.BaseEntity
	Action      AuditAction      `json:"action"`
	EntityType  string           `json:"entity_type"` // 'customer' | 'company' | 'debt'
	EntityID    uuid.UUID        `json:"entity_id"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
}

// NewAuditLog creates a new audit log entry
func NewAuditLog(action AuditAction, entityType string, entityID uuid.UUID, description string, amount *decimal.Decimal) (*AuditLog, error) {
	if !action.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACTION", "Audit action must be create or delete")
	}
	if entityType == "" {
		return nil, shared.NewDomainError("INVALID_ENTITY_TYPE", "Entity type cannot be empty")
	}
	if entityID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ENTITY", "Entity ID cannot be empty")
	}

	return &AuditLog{
		BaseEntity:  shared.NewBaseEntity(),
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		Amount:      amount,
	}, nil
}
