package calculator

// Momentum returns the percentage change between the last price and the
// price lag observations before it. Requires more than lag prices.
func Momentum(prices []float64, lag int) (float64, bool) {
	if lag <= 0 || len(prices) <= lag {
		return 0, false
	}
	base := prices[len(prices)-1-lag]
	return (prices[len(prices)-1] - base) / base * 100, true
}

// VolatilityPct is the population stddev of the last window prices as a
// percentage of the last price.
func VolatilityPct(prices []float64, window int) (float64, bool) {
	if window <= 0 || len(prices) < window {
		return 0, false
	}
	sd, _ := StdDev(prices[len(prices)-window:])
	return sd / prices[len(prices)-1] * 100, true
}
