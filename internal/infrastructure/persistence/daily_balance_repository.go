package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDailyBalanceRepository implements planning.DailyBalanceRepository using GORM
type GormDailyBalanceRepository struct {
	db *gorm.DB
}

// NewGormDailyBalanceRepository creates a new GormDailyBalanceRepository
func NewGormDailyBalanceRepository(db *gorm.DB) *GormDailyBalanceRepository {
	return &GormDailyBalanceRepository{db: db}
}

// Upsert inserts a balance or replaces the amount for an existing date
func (r *GormDailyBalanceRepository) Upsert(ctx context.Context, balance *planning.DailyBalance) error {
	model := models.DailyBalanceModelFromDomain(balance)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"available_amount", "updated_at"}),
	}).Create(model).Error
}

// FindByDate finds the balance recorded for a specific date
func (r *GormDailyBalanceRepository) FindByDate(ctx context.Context, date time.Time) (*planning.DailyBalance, error) {
	var model models.DailyBalanceModel
	if err := r.db.WithContext(ctx).First(&model, "date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindInRange finds balances in the given date range, oldest first.
// Nil bounds leave that side of the range open.
func (r *GormDailyBalanceRepository) FindInRange(ctx context.Context, start, end *time.Time) ([]planning.DailyBalance, error) {
	query := r.db.WithContext(ctx).Model(&models.DailyBalanceModel{})
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var balanceModels []models.DailyBalanceModel
	if err := query.Order("date ASC").Find(&balanceModels).Error; err != nil {
		return nil, err
	}

	balances := make([]planning.DailyBalance, len(balanceModels))
	for i, model := range balanceModels {
		balances[i] = *model.ToDomain()
	}
	return balances, nil
}

// Ensure GormDailyBalanceRepository implements DailyBalanceRepository
var _ planning.DailyBalanceRepository = (*GormDailyBalanceRepository)(nil)
