package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebt(t *testing.T) {
	partyID := uuid.New()

	t.Run("creates debt entry", func(t *testing.T) {
		d, err := NewDebt(PartyTypeCustomer, partyID, valueobject.NewMoneyUSDFromFloat(250), "flour delivery", nil)
		require.NoError(t, err)
		assert.Equal(t, PartyTypeCustomer, d.PartyType)
		assert.Equal(t, partyID, d.PartyID)
		assert.Equal(t, "250", d.Amount.String())
		assert.False(t, d.IsSettled)
		assert.False(t, d.IsPayment())
	})

	t.Run("rejects invalid party type", func(t *testing.T) {
		_, err := NewDebt("vendor", partyID, valueobject.NewMoneyUSDFromFloat(100), "", nil)
		assert.Error(t, err)
	})

	t.Run("rejects nil party", func(t *testing.T) {
		_, err := NewDebt(PartyTypeCustomer, uuid.Nil, valueobject.NewMoneyUSDFromFloat(100), "", nil)
		assert.Error(t, err)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewDebt(PartyTypeCustomer, partyID, valueobject.ZeroUSD(), "", nil)
		assert.Error(t, err)
	})
}

func TestNewPaymentEntry(t *testing.T) {
	partyID := uuid.New()

	t.Run("stores payment as negated amount", func(t *testing.T) {
		p, err := NewPaymentEntry(PartyTypeCustomer, partyID, valueobject.NewMoneyUSDFromFloat(75), "cash payment")
		require.NoError(t, err)
		assert.True(t, p.IsPayment())
		assert.Equal(t, "-75", p.Amount.String())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPaymentEntry(PartyTypeCustomer, partyID, valueobject.NewMoneyUSDFromFloat(-10), "")
		assert.Error(t, err)
	})
}

func TestDebtSettle(t *testing.T) {
	d, err := NewDebt(PartyTypeCompany, uuid.New(), valueobject.NewMoneyUSDFromFloat(100), "", nil)
	require.NoError(t, err)

	require.NoError(t, d.Settle())
	assert.True(t, d.IsSettled)

	t.Run("settling twice fails", func(t *testing.T) {
		assert.Error(t, d.Settle())
	})
}

func TestDebtOverdue(t *testing.T) {
	now := time.Now()
	partyID := uuid.New()

	t.Run("no due date is never overdue", func(t *testing.T) {
		d, err := NewDebt(PartyTypeCustomer, partyID, valueobject.NewMoneyUSDFromFloat(100), "", nil)
		require.NoError(t, err)
		assert.False(t, d.IsOverdue(now))
		assert.Equal(t, 0, d.DaysOverdue(now))
	})

	t.Run("past due date is overdue", func(t *testing.T) {
		due := now.Add(-72 * time.Hour)
		d, err := NewDebt(PartyTypeCustomer, partyID, valueobject.NewMoneyUSDFromFloat(100), "", &due)
		require.NoError(t, err)
		assert.True(t, d.IsOverdue(now))
		assert.Equal(t, 3, d.DaysOverdue(now))
	})

	t.Run("settled debt is not overdue", func(t *testing.T) {
		due := now.Add(-72 * time.Hour)
		d, err := NewDebt(PartyTypeCustomer, partyID, valueobject.NewMoneyUSDFromFloat(100), "", &due)
		require.NoError(t, err)
		require.NoError(t, d.Settle())
		assert.False(t, d.IsOverdue(now))
	})
}

func TestOutstandingTotal(t *testing.T) {
	partyID := uuid.New()
	now := time.Now()

	debts := []Debt{
		newTestDebt(t, partyID, 300, now, nil),
		newTestPayment(t, partyID, 50, now),
	}
	settled := newTestDebt(t, partyID, 1000, now, nil)
	settled.IsSettled = true
	debts = append(debts, settled)

	assert.Equal(t, "250", OutstandingTotal(debts).String())
}
