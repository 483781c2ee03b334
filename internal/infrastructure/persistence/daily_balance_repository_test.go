package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/marwan-sadiq/deptapp/internal/domain/planning"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDailyBalanceRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDailyBalanceRepository(db)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("upsert inserts and finds by date", func(t *testing.T) {
		balance, err := planning.NewDailyBalance(day(1), decimal.NewFromInt(500))
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, balance))

		found, err := repo.FindByDate(ctx, day(1))
		require.NoError(t, err)
		assert.True(t, found.AvailableAmount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("upsert replaces the amount for an existing date", func(t *testing.T) {
		replacement, err := planning.NewDailyBalance(day(1), decimal.NewFromInt(750))
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, replacement))

		found, err := repo.FindByDate(ctx, day(1))
		require.NoError(t, err)
		assert.True(t, found.AvailableAmount.Equal(decimal.NewFromInt(750)))

		var count int64
		require.NoError(t, db.Table("daily_balances").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("find in range is ordered and bounded", func(t *testing.T) {
		for d := 2; d <= 5; d++ {
			balance, err := planning.NewDailyBalance(day(d), decimal.NewFromInt(int64(d*100)))
			require.NoError(t, err)
			require.NoError(t, repo.Upsert(ctx, balance))
		}

		start, end := day(2), day(4)
		balances, err := repo.FindInRange(ctx, &start, &end)
		require.NoError(t, err)
		require.Len(t, balances, 3)
		assert.Equal(t, 2, balances[0].Date.Day())
		assert.Equal(t, 4, balances[2].Date.Day())
	})

	t.Run("open-ended range returns everything", func(t *testing.T) {
		balances, err := repo.FindInRange(ctx, nil, nil)
		require.NoError(t, err)
		assert.Len(t, balances, 5)
	})

	t.Run("missing date reports not found", func(t *testing.T) {
		_, err := repo.FindByDate(ctx, day(28))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
