package calculator

import "math"

// Bands are Bollinger Bands around a simple moving average.
type Bands struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// StdDev returns the population standard deviation (divides by N).
func StdDev(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	avg := mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - avg
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(values))), true
}

// BollingerBands computes middle = SMA(period) and upper/lower = middle ± k·stddev
// of the last period prices.
func BollingerBands(prices []float64, period int, k float64) (Bands, bool) {
	middle, ok := SMA(prices, period)
	if !ok {
		return Bands{}, false
	}
	sd, _ := StdDev(prices[len(prices)-period:])
	band := k * sd
	return Bands{Upper: middle + band, Middle: middle, Lower: middle - band}, true
}
