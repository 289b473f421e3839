package calculator

import (
	"math"

	"StockAdvisor/internal/model"
)

// SupportResistance scans the most recent window closes and returns the low
// (support), the high (resistance) and their distance from the last close in percent.
func SupportResistance(prices []float64, window int) (model.PriceLevels, bool) {
	if window <= 0 || len(prices) < window {
		return model.PriceLevels{}, false
	}
	high := math.Inf(-1)
	low := math.Inf(1)
	for _, p := range prices[len(prices)-window:] {
		if p > high {
			high = p
		}
		if p < low {
			low = p
		}
	}
	current := prices[len(prices)-1]
	return model.PriceLevels{
		Support:              low,
		Resistance:           high,
		DistanceToSupport:    (current - low) / current * 100,
		DistanceToResistance: (high - current) / current * 100,
	}, true
}
