package persistence

import (
	"testing"

	"github.com/marwan-sadiq/deptapp/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.CustomerModel{},
		&models.CompanyModel{},
		&models.DebtModel{},
		&models.EntityActivityModel{},
		&models.AuditLogModel{},
		&models.PaymentPlanModel{},
		&models.PaymentScheduleModel{},
		&models.DailyBalanceModel{},
		&models.UserModel{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
