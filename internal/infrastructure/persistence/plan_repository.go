package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPlanRepository implements planning.PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GormPlanRepository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// FindByID finds a payment plan by its ID
func (r *GormPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.PaymentPlan, error) {
	var model models.PaymentPlanModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all payment plans matching the filter
func (r *GormPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.PaymentPlan, error) {
	var planModels []models.PaymentPlanModel
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.PaymentPlanModel{}), filter)
	query = applyOrdering(query, filter, "priority ASC, created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&planModels).Error; err != nil {
		return nil, err
	}
	return toDomainPlans(planModels), nil
}

// FindActive finds all active payment plans ordered by priority
func (r *GormPlanRepository) FindActive(ctx context.Context) ([]planning.PaymentPlan, error) {
	var planModels []models.PaymentPlanModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority ASC, created_at ASC").
		Find(&planModels).Error; err != nil {
		return nil, err
	}
	return toDomainPlans(planModels), nil
}

// FindByParty finds payment plans for one party
func (r *GormPlanRepository) FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) ([]planning.PaymentPlan, error) {
	var planModels []models.PaymentPlanModel
	if err := r.db.WithContext(ctx).
		Where("party_type = ? AND party_id = ?", partyType.String(), partyID).
		Order("created_at DESC").
		Find(&planModels).Error; err != nil {
		return nil, err
	}
	return toDomainPlans(planModels), nil
}

// Save creates or updates a payment plan
func (r *GormPlanRepository) Save(ctx context.Context, plan *planning.PaymentPlan) error {
	model := models.PaymentPlanModelFromDomain(plan)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveAll creates or updates multiple payment plans
func (r *GormPlanRepository) SaveAll(ctx context.Context, plans []*planning.PaymentPlan) error {
	if len(plans) == 0 {
		return nil
	}
	planModels := make([]*models.PaymentPlanModel, len(plans))
	for i, p := range plans {
		planModels[i] = models.PaymentPlanModelFromDomain(p)
	}
	return r.db.WithContext(ctx).Save(planModels).Error
}

// Delete deletes a payment plan
func (r *GormPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentPlanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts payment plans matching the filter
func (r *GormPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.PaymentPlanModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPlanRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("party_name LIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "priority":
			query = query.Where("priority = ?", value)
		case "party_type":
			query = query.Where("party_type = ?", value)
		}
	}
	return query
}

func toDomainPlans(planModels []models.PaymentPlanModel) []planning.PaymentPlan {
	plans := make([]planning.PaymentPlan, len(planModels))
	for i, model := range planModels {
		plans[i] = *model.ToDomain()
	}
	return plans
}

// Ensure GormPlanRepository implements PlanRepository
var _ planning.PlanRepository = (*GormPlanRepository)(nil)
