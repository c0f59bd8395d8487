package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	t.Run("KnownValue", func(t *testing.T) {
		// 24000 over 48 months at 6.99% APR.
		payment, err := MonthlyPayment(24000, 48, 0.0699)
		require.NoError(t, err)
		assert.InDelta(t, 574.60, RoundCurrency(payment), 0.05)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := MonthlyPayment(17500.50, 60, 0.0499)
		require.NoError(t, err)
		b, err := MonthlyPayment(17500.50, 60, 0.0499)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("TotalRepaidCoversPrincipal", func(t *testing.T) {
		terms := []int{12, 24, 36, 48, 60, 72, 84}
		principals := []float64{1000, 24000, 70000, 199999.99}
		for _, term := range terms {
			for _, principal := range principals {
				payment, err := MonthlyPayment(principal, term, 0.0699)
				require.NoError(t, err)
				assert.Greater(t, payment, 0.0)
				assert.GreaterOrEqual(t, TotalRepaid(payment, term), principal,
					"total repaid must cover the borrowed principal")
			}
		}
	})

	t.Run("ZeroTerm", func(t *testing.T) {
		_, err := MonthlyPayment(24000, 0, 0.0699)
		assert.ErrorIs(t, err, ErrInvalidTerm)
	})

	t.Run("ZeroRate", func(t *testing.T) {
		_, err := MonthlyPayment(24000, 48, 0)
		assert.ErrorIs(t, err, ErrInvalidTerm)
	})

	t.Run("NegativeTerm", func(t *testing.T) {
		_, err := MonthlyPayment(24000, -12, 0.0699)
		assert.ErrorIs(t, err, ErrInvalidTerm)
	})

	t.Run("NonPositivePrincipal", func(t *testing.T) {
		_, err := MonthlyPayment(0, 48, 0.0699)
		assert.ErrorIs(t, err, ErrInvalidPrincipal)

		_, err = MonthlyPayment(-100, 48, 0.0699)
		assert.ErrorIs(t, err, ErrInvalidPrincipal)
	})
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 574.62, RoundCurrency(574.6249))
	assert.Equal(t, 574.63, RoundCurrency(574.625))
	assert.Equal(t, 100.0, RoundCurrency(100.0))
}

func TestPaymentMatches(t *testing.T) {
	payment, err := MonthlyPayment(24000, 48, 0.0699)
	require.NoError(t, err)

	recomputed, err := MonthlyPayment(24000, 48, 0.0699)
	require.NoError(t, err)

	assert.True(t, PaymentMatches(payment, recomputed, 1e-6))
	assert.False(t, PaymentMatches(payment, recomputed+0.001, 1e-6))
}
