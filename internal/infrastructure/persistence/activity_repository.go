package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormActivityRepository implements ledger.ActivityRepository using GORM
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GormActivityRepository
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Save creates an activity entry
func (r *GormActivityRepository) Save(ctx context.Context, activity *ledger.EntityActivity) error {
	model := models.EntityActivityModelFromDomain(activity)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindRecent finds the most recent activity entries across all parties
func (r *GormActivityRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]ledger.EntityActivity, error) {
	var activityModels []models.EntityActivityModel
	query := r.db.WithContext(ctx).Model(&models.EntityActivityModel{}).Order("created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&activityModels).Error; err != nil {
		return nil, err
	}
	return toDomainActivities(activityModels), nil
}

// FindByParty finds activity entries for one party, newest first
func (r *GormActivityRepository) FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID, filter shared.Filter) ([]ledger.EntityActivity, error) {
	var activityModels []models.EntityActivityModel
	query := r.db.WithContext(ctx).
		Where("party_type = ? AND party_id = ?", partyType.String(), partyID).
		Order("created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&activityModels).Error; err != nil {
		return nil, err
	}
	return toDomainActivities(activityModels), nil
}

func toDomainActivities(activityModels []models.EntityActivityModel) []ledger.EntityActivity {
	activities := make([]ledger.EntityActivity, len(activityModels))
	for i, model := range activityModels {
		activities[i] = *model.ToDomain()
	}
	return activities
}

// Ensure GormActivityRepository implements ActivityRepository
var _ ledger.ActivityRepository = (*GormActivityRepository)(nil)

// GormAuditLogRepository implements ledger.AuditLogRepository using GORM
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Save creates an audit log entry
func (r *GormAuditLogRepository) Save(ctx context.Context, entry *ledger.AuditLog) error {
	model := models.AuditLogModelFromDomain(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindRecent finds the most recent audit log entries
func (r *GormAuditLogRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]ledger.AuditLog, error) {
	var logModels []models.AuditLogModel
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{}).Order("created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	entries := make([]ledger.AuditLog, len(logModels))
	for i, model := range logModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// Ensure GormAuditLogRepository implements AuditLogRepository
var _ ledger.AuditLogRepository = (*GormAuditLogRepository)(nil)
