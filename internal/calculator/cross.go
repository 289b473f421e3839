package calculator

import "StockAdvisor/internal/model"

const (
	crossShort    = 50
	crossLong     = 200
	crossLookback = 5
)

// GoldenCross reports whether SMA50 crossed above SMA200 within the last 5 observations.
func GoldenCross(prices []float64) bool {
	return crossed(prices, true)
}

// DeathCross reports whether SMA50 crossed below SMA200 within the last 5 observations.
func DeathCross(prices []float64) bool {
	return crossed(prices, false)
}

// crossed looks for an offset i in [1,5] where the SMA50/SMA200 ordering flips
// between observation -i-1 and -i. Pairs where SMA200 is not yet defined are skipped.
func crossed(prices []float64, upward bool) bool {
	if len(prices) < crossLong {
		return false
	}
	short := smaSeries(prices, crossShort)
	long := smaSeries(prices, crossLong)

	n := len(prices)
	for i := 1; i <= crossLookback; i++ {
		cur, prev := n-i, n-i-1
		if prev < crossLong-1 {
			break
		}
		if upward && short[cur] > long[cur] && short[prev] <= long[prev] {
			return true
		}
		if !upward && short[cur] < long[cur] && short[prev] >= long[prev] {
			return true
		}
	}
	return false
}

// Trend labels the relation between SMA50 and SMA200.
func Trend(sma50, sma200 *float64) string {
	if sma50 == nil || sma200 == nil {
		return model.TrendInsufficient
	}
	switch {
	case *sma50 > *sma200:
		return model.TrendBullish
	case *sma50 < *sma200:
		return model.TrendBearish
	default:
		return model.TrendNeutral
	}
}
