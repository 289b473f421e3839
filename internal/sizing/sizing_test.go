package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAdvisor/internal/model"
)

func TestPlan_CappedByMaxPosition(t *testing.T) {
	pos, err := Plan(100000, 100, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, int64(200), pos.Shares)
	assert.Equal(t, "20000.00", pos.PositionValue.StringFixed(2))
	assert.Equal(t, "95.00", pos.StopLoss.StringFixed(2))
	assert.Equal(t, "110.00", pos.TakeProfit.StringFixed(2))
	assert.Equal(t, "2000.00", pos.RiskAmount.StringFixed(2))
	assert.Equal(t, "2.00", pos.RiskRewardRatio.StringFixed(2))
}

func TestPlan_LimitedByRisk(t *testing.T) {
	p := DefaultParams()
	p.StopLossPercent = 0.2
	pos, err := Plan(100000, 100, p)
	require.NoError(t, err)
	assert.Equal(t, int64(100), pos.Shares)
	assert.Equal(t, "80.00", pos.StopLoss.StringFixed(2))
	assert.Equal(t, "0.50", pos.RiskRewardRatio.StringFixed(2))
}

func TestPlan_RoundsToCents(t *testing.T) {
	pos, err := Plan(10000, 33.333, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, int64(60), pos.Shares)
	assert.Equal(t, "1999.98", pos.PositionValue.StringFixed(2))
	assert.Equal(t, "31.67", pos.StopLoss.StringFixed(2))
	assert.Equal(t, "36.67", pos.TakeProfit.StringFixed(2))
}

func TestPlan_PriceAboveCap(t *testing.T) {
	pos, err := Plan(1000, 300, DefaultParams())
	require.NoError(t, err)
	assert.Zero(t, pos.Shares)
	assert.True(t, pos.PositionValue.IsZero())
}

func TestPlan_InvalidInput(t *testing.T) {
	_, err := Plan(0, 100, DefaultParams())
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = Plan(1000, -1, DefaultParams())
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = Plan(1000, 10, Params{})
	assert.Error(t, err)
}

func TestPlan_NonFinite(t *testing.T) {
	tests := []struct {
		name      string
		portfolio float64
		price     float64
		field     string
	}{
		{"nan portfolio", math.NaN(), 100, "portfolio_value"},
		{"infinite portfolio", math.Inf(1), 100, "portfolio_value"},
		{"nan price", 100000, math.NaN(), "price"},
		{"infinite price", 100000, math.Inf(1), "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = Plan(tt.portfolio, tt.price, DefaultParams()) })
			var iie *model.InvalidInputError
			require.ErrorAs(t, err, &iie)
			assert.Equal(t, tt.field, iie.Field)
		})
	}

	p := DefaultParams()
	p.RiskPercent = math.NaN()
	require.NotPanics(t, func() {
		_, err := Plan(100000, 100, p)
		assert.Error(t, err)
	})
}
