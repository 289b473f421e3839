package calculator

import (
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdDev_Population(t *testing.T) {
	got, ok := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.True(t, ok)
	assert.InDelta(t, 2.0, got, 1e-12)

	_, ok = StdDev(nil)
	assert.False(t, ok)
}

func TestBollingerBands_MatchTalib(t *testing.T) {
	prices := wave(100)
	upper, middle, lower := talib.BBands(prices, 20, 2, 2, talib.SMA)

	got, ok := BollingerBands(prices, 20, 2)
	require.True(t, ok)
	last := len(prices) - 1
	assert.InDelta(t, upper[last], got.Upper, 1e-6)
	assert.InDelta(t, middle[last], got.Middle, 1e-9)
	assert.InDelta(t, lower[last], got.Lower, 1e-6)
}

func TestBollingerBands_ConstantAndShort(t *testing.T) {
	got, ok := BollingerBands(constant(20, 10), 20, 2)
	require.True(t, ok)
	assert.Equal(t, Bands{Upper: 10, Middle: 10, Lower: 10}, got)

	_, ok = BollingerBands(constant(19, 10), 20, 2)
	assert.False(t, ok)
}
