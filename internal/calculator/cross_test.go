package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockAdvisor/internal/model"
)

// reversal builds 200 linear observations followed by k observations moving
// the other way, which makes SMA50 cross SMA200 after 38 to 42 reversal days.
func reversal(start, slope, turnStep float64, k int) []float64 {
	prices := make([]float64, 0, 200+k)
	for i := 0; i < 200; i++ {
		prices = append(prices, start+slope*float64(i))
	}
	pivot := start + slope*200
	for j := 1; j <= k; j++ {
		prices = append(prices, pivot+turnStep*float64(j))
	}
	return prices
}

func TestGoldenCross_RecentFlip(t *testing.T) {
	prices := reversal(200, -0.5, 3, 40)
	assert.True(t, GoldenCross(prices))
	assert.False(t, DeathCross(prices))
}

func TestGoldenCross_FlipOlderThanFiveObservations(t *testing.T) {
	assert.False(t, GoldenCross(reversal(200, -0.5, 3, 45)))
}

func TestDeathCross_RecentFlip(t *testing.T) {
	prices := reversal(100, 0.5, -3, 40)
	assert.True(t, DeathCross(prices))
	assert.False(t, GoldenCross(prices))
	assert.False(t, DeathCross(reversal(100, 0.5, -3, 45)))
}

func TestCross_RequiresLongHistory(t *testing.T) {
	prices := reversal(200, -0.5, 3, 40)
	assert.False(t, GoldenCross(prices[len(prices)-199:]))
	assert.False(t, DeathCross(constant(150, 10)))
}

func TestGoldenCross_NeverOnMonotonicRise(t *testing.T) {
	prices := rising(320, 50, 0.5)
	for n := 200; n <= len(prices); n++ {
		assert.False(t, GoldenCross(prices[:n]), "unexpected golden cross at length %d", n)
		assert.False(t, DeathCross(prices[:n]), "unexpected death cross at length %d", n)
	}
}

func TestTrend(t *testing.T) {
	assert.Equal(t, model.TrendInsufficient, Trend(nil, model.Float(1)))
	assert.Equal(t, model.TrendBullish, Trend(model.Float(2), model.Float(1)))
	assert.Equal(t, model.TrendBearish, Trend(model.Float(1), model.Float(2)))
	assert.Equal(t, model.TrendNeutral, Trend(model.Float(1), model.Float(1)))
}
