package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormScheduleRepository implements planning.ScheduleRepository using GORM
type GormScheduleRepository struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GormScheduleRepository
func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

// FindByID finds a scheduled payment by its ID
func (r *GormScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.PaymentSchedule, error) {
	var model models.PaymentScheduleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all scheduled payments matching the filter
func (r *GormScheduleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.PaymentSchedule, error) {
	var scheduleModels []models.PaymentScheduleModel
	query := r.db.WithContext(ctx).Model(&models.PaymentScheduleModel{})
	query = applyOrdering(query, filter, "scheduled_date ASC")
	query = applyPagination(query, filter)

	if err := query.Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainSchedules(scheduleModels), nil
}

// FindByQuery finds scheduled payments matching the query.
// Party filters join through the owning plan.
func (r *GormScheduleRepository) FindByQuery(ctx context.Context, q planning.ScheduleQuery) ([]planning.PaymentSchedule, error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentScheduleModel{})

	if q.StartDate != nil {
		query = query.Where("scheduled_date >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		query = query.Where("scheduled_date <= ?", *q.EndDate)
	}
	if q.IsPaid != nil {
		query = query.Where("is_paid = ?", *q.IsPaid)
	}
	if q.PartyType != "" || q.PartyID != nil {
		sub := r.db.Model(&models.PaymentPlanModel{}).Select("id")
		if q.PartyType != "" {
			sub = sub.Where("party_type = ?", q.PartyType.String())
		}
		if q.PartyID != nil {
			sub = sub.Where("party_id = ?", *q.PartyID)
		}
		query = query.Where("plan_id IN (?)", sub)
	}

	var scheduleModels []models.PaymentScheduleModel
	if err := query.Order("scheduled_date ASC").Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainSchedules(scheduleModels), nil
}

// FindByPlan finds scheduled payments for one plan, earliest first
func (r *GormScheduleRepository) FindByPlan(ctx context.Context, planID uuid.UUID) ([]planning.PaymentSchedule, error) {
	var scheduleModels []models.PaymentScheduleModel
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("scheduled_date ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, err
	}
	return toDomainSchedules(scheduleModels), nil
}

// Save creates or updates a scheduled payment
func (r *GormScheduleRepository) Save(ctx context.Context, schedule *planning.PaymentSchedule) error {
	model := models.PaymentScheduleModelFromDomain(schedule)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveAll creates or updates multiple scheduled payments
func (r *GormScheduleRepository) SaveAll(ctx context.Context, schedules []*planning.PaymentSchedule) error {
	if len(schedules) == 0 {
		return nil
	}
	scheduleModels := make([]*models.PaymentScheduleModel, len(schedules))
	for i, s := range schedules {
		scheduleModels[i] = models.PaymentScheduleModelFromDomain(s)
	}
	return r.db.WithContext(ctx).Save(scheduleModels).Error
}

// Delete deletes a scheduled payment
func (r *GormScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentScheduleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByPlan deletes all scheduled payments belonging to a plan
func (r *GormScheduleRepository) DeleteByPlan(ctx context.Context, planID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PaymentScheduleModel{}, "plan_id = ?", planID).Error
}

// Count counts scheduled payments matching the filter
func (r *GormScheduleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PaymentScheduleModel{})
	for key, value := range filter.Filters {
		switch key {
		case "is_paid":
			query = query.Where("is_paid = ?", value)
		case "plan_id":
			query = query.Where("plan_id = ?", value)
		}
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainSchedules(scheduleModels []models.PaymentScheduleModel) []planning.PaymentSchedule {
	schedules := make([]planning.PaymentSchedule, len(scheduleModels))
	for i, model := range scheduleModels {
		schedules[i] = *model.ToDomain()
	}
	return schedules
}

// Ensure GormScheduleRepository implements ScheduleRepository
var _ planning.ScheduleRepository = (*GormScheduleRepository)(nil)
