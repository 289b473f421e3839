package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSI_HandComputed(t *testing.T) {
	// gains 5.5, losses 1.25 over 14 changes: RS = 4.4
	up := []float64{44, 44.5, 44.25, 45, 45.5, 45.25, 46, 46.5, 46.25, 47, 47.5, 47.25, 48, 48.5, 48.25}
	got, ok := RSI(up, 14)
	require.True(t, ok)
	assert.InDelta(t, 81.48148148148148, got, 1e-9)

	// gains 4, losses 10: RS = 0.4
	down := []float64{10, 9, 8, 9, 8, 7, 8, 7, 6, 7, 6, 5, 6, 5, 4}
	got, ok = RSI(down, 14)
	require.True(t, ok)
	assert.InDelta(t, 28.571428571428573, got, 1e-9)
}

func TestRSI_UsesOnlyLastPeriodChanges(t *testing.T) {
	// A large early drop must not affect RSI once it is outside the window.
	prices := append([]float64{500, 100}, rising(15, 100, 1)...)
	got, ok := RSI(prices, 14)
	require.True(t, ok)
	assert.Equal(t, 100.0, got)
}

func TestRSI_ConstantSeriesIs100(t *testing.T) {
	// avgGain and avgLoss are both zero; the avgLoss == 0 rule applies.
	got, ok := RSI(constant(200, 42), 14)
	require.True(t, ok)
	assert.Equal(t, 100.0, got)
}

func TestRSI_Insufficient(t *testing.T) {
	_, ok := RSI(constant(14, 1), 14)
	assert.False(t, ok)

	_, ok = RSI(constant(15, 1), 14)
	assert.True(t, ok)
}
