package planning

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentSchedule(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates schedule entry", func(t *testing.T) {
		s, err := NewPaymentSchedule(uuid.New(), date, decimal.NewFromFloat(120.50))
		require.NoError(t, err)
		assert.False(t, s.IsPaid)
		assert.Nil(t, s.ActualAmount)
		assert.Nil(t, s.PaidAt)
	})

	t.Run("rejects nil plan", func(t *testing.T) {
		_, err := NewPaymentSchedule(uuid.Nil, date, decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewPaymentSchedule(uuid.New(), date, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewPaymentSchedule(uuid.New(), date, decimal.NewFromInt(-10))
		assert.Error(t, err)
	})
}

func TestPaymentScheduleMarkCompleted(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("defaults to the scheduled amount", func(t *testing.T) {
		s, err := NewPaymentSchedule(uuid.New(), date, decimal.NewFromInt(100))
		require.NoError(t, err)

		applied, err := s.MarkCompleted(nil, now)
		require.NoError(t, err)
		assert.True(t, applied.Equal(decimal.NewFromInt(100)))
		assert.True(t, s.IsPaid)
		require.NotNil(t, s.ActualAmount)
		require.NotNil(t, s.PaidAt)
		assert.Equal(t, now, *s.PaidAt)
	})

	t.Run("records a different actual amount", func(t *testing.T) {
		s, err := NewPaymentSchedule(uuid.New(), date, decimal.NewFromInt(100))
		require.NoError(t, err)

		actual := decimal.NewFromInt(80)
		applied, err := s.MarkCompleted(&actual, now)
		require.NoError(t, err)
		assert.True(t, applied.Equal(actual))
		assert.True(t, s.ActualAmount.Equal(actual))
	})

	t.Run("cannot complete twice", func(t *testing.T) {
		s, err := NewPaymentSchedule(uuid.New(), date, decimal.NewFromInt(100))
		require.NoError(t, err)

		_, err = s.MarkCompleted(nil, now)
		require.NoError(t, err)
		_, err = s.MarkCompleted(nil, now)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive actual amount", func(t *testing.T) {
		s, err := NewPaymentSchedule(uuid.New(), date, decimal.NewFromInt(100))
		require.NoError(t, err)

		bad := decimal.Zero
		_, err = s.MarkCompleted(&bad, now)
		assert.Error(t, err)
	})
}
