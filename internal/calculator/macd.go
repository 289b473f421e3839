package calculator

const (
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9
)

// MACDResult holds the latest MACD values. Signal and Histogram are only
// meaningful when HasSignal is true.
type MACDResult struct {
	Line      float64
	Signal    float64
	Histogram float64
	HasSignal bool
}

// MACD computes the 12/26 MACD line and its 9-period signal line.
// The line needs 26 prices; the signal line is the EMA of the MACD-line
// history and needs 26+9 prices.
func MACD(prices []float64) (MACDResult, bool) {
	if len(prices) < macdSlow {
		return MACDResult{}, false
	}

	fast := EMASeries(prices, macdFast)
	slow := EMASeries(prices, macdSlow)

	// fast[j] is aligned with prices[j+11], slow[i] with prices[i+25].
	offset := macdSlow - macdFast
	line := make([]float64, len(slow))
	for i := range slow {
		line[i] = fast[i+offset] - slow[i]
	}

	res := MACDResult{Line: line[len(line)-1]}
	if len(prices) < macdSlow+macdSignal {
		return res, true
	}

	signal := EMASeries(line, macdSignal)
	res.Signal = signal[len(signal)-1]
	res.Histogram = res.Line - res.Signal
	res.HasSignal = true
	return res, true
}
