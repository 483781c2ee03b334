package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDebtRepository implements ledger.DebtRepository using GORM
type GormDebtRepository struct {
	db *gorm.DB
}

// NewGormDebtRepository creates a new GormDebtRepository
func NewGormDebtRepository(db *gorm.DB) *GormDebtRepository {
	return &GormDebtRepository{db: db}
}

// FindByID finds a debt entry by its ID
func (r *GormDebtRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Debt, error) {
	var model models.DebtModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all debt entries matching the filter
func (r *GormDebtRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Debt, error) {
	var debtModels []models.DebtModel
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.DebtModel{}), filter)
	query = applyOrdering(query, filter, "created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&debtModels).Error; err != nil {
		return nil, err
	}
	return toDomainDebts(debtModels), nil
}

// FindByParty finds all debt entries for one party, newest first
func (r *GormDebtRepository) FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) ([]ledger.Debt, error) {
	var debtModels []models.DebtModel
	if err := r.db.WithContext(ctx).
		Where("party_type = ? AND party_id = ?", partyType.String(), partyID).
		Order("created_at DESC").
		Find(&debtModels).Error; err != nil {
		return nil, err
	}
	return toDomainDebts(debtModels), nil
}

// FindUnsettled finds all unsettled debt entries
func (r *GormDebtRepository) FindUnsettled(ctx context.Context) ([]ledger.Debt, error) {
	var debtModels []models.DebtModel
	if err := r.db.WithContext(ctx).
		Where("is_settled = ?", false).
		Order("created_at ASC").
		Find(&debtModels).Error; err != nil {
		return nil, err
	}
	return toDomainDebts(debtModels), nil
}

// Save creates or updates a debt entry
func (r *GormDebtRepository) Save(ctx context.Context, debt *ledger.Debt) error {
	model := models.DebtModelFromDomain(debt)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a debt entry
func (r *GormDebtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DebtModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts debt entries matching the filter
func (r *GormDebtRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.DebtModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormDebtRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("note LIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "party_type":
			query = query.Where("party_type = ?", value)
		case "party_id":
			query = query.Where("party_id = ?", value)
		case "is_settled":
			query = query.Where("is_settled = ?", value)
		case "is_payment":
			if value == true {
				query = query.Where("amount < 0")
			} else {
				query = query.Where("amount > 0")
			}
		}
	}
	return query
}

func toDomainDebts(debtModels []models.DebtModel) []ledger.Debt {
	debts := make([]ledger.Debt, len(debtModels))
	for i, model := range debtModels {
		debts[i] = *model.ToDomain()
	}
	return debts
}

// Ensure GormDebtRepository implements DebtRepository
var _ ledger.DebtRepository = (*GormDebtRepository)(nil)
