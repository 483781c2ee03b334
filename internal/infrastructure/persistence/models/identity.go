package models

import (
	"time"

	"github.com/marwan-sadiq/deptapp/internal/domain/identity"
)

// UserModel is the persistence model for identity.User
type UserModel struct {
	AggregateModel
	Username       string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email          string `gorm:"type:varchar(200);index"`
	Phone          string `gorm:"type:varchar(50)"`
	PasswordHash   string `gorm:"type:varchar(255);not null"`
	IsManager      bool   `gorm:"not null;default:false"`
	Status         string `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt    *time.Time
	LastLoginIP    string `gorm:"type:varchar(45)"`
	FailedAttempts int    `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

// TableName specifies the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		Email:             m.Email,
		Phone:             m.Phone,
		PasswordHash:      m.PasswordHash,
		IsManager:         m.IsManager,
		Status:            identity.UserStatus(m.Status),
		LastLoginAt:       m.LastLoginAt,
		LastLoginIP:       m.LastLoginIP,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
	}
}

// UserModelFromDomain converts a domain user to a persistence model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Username:       u.Username,
		Email:          u.Email,
		Phone:          u.Phone,
		PasswordHash:   u.PasswordHash,
		IsManager:      u.IsManager,
		Status:         string(u.Status),
		LastLoginAt:    u.LastLoginAt,
		LastLoginIP:    u.LastLoginIP,
		FailedAttempts: u.FailedAttempts,
		LockedUntil:    u.LockedUntil,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}
