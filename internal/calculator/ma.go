package calculator

import "github.com/markcheno/go-talib"

// SMA computes the simple moving average of the last period prices.
// ok is false when fewer than period prices are available.
func SMA(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), true
}

// EMA returns the latest exponential moving average over the whole series.
func EMA(prices []float64, period int) (float64, bool) {
	series := EMASeries(prices, period)
	if series == nil {
		return 0, false
	}
	return series[len(series)-1], true
}

// EMASeries returns the EMA history aligned with prices[period-1:].
// The first value is the simple mean of the first period prices; each later
// value applies ema = (price-ema)*2/(period+1) + ema in chronological order.
func EMASeries(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}
	k := 2.0 / float64(period+1)
	out := make([]float64, 0, len(prices)-period+1)
	ema := mean(prices[:period])
	out = append(out, ema)
	for _, p := range prices[period:] {
		ema = (p-ema)*k + ema
		out = append(out, ema)
	}
	return out
}

// smaSeries returns a full-length SMA history; entries before index period-1 are undefined.
func smaSeries(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}
	return talib.Sma(prices, period)
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
