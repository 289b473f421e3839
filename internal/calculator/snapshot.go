package calculator

import "StockAdvisor/internal/model"

// Standard lookbacks used for the snapshot.
const (
	RSIPeriod        = 14
	BollingerPeriod  = 20
	BollingerK       = 2.0
	VolatilityWindow = 20
	LevelsWindow     = 20
)

// Compute builds the full indicator snapshot for a validated price series.
// Indicators whose lookback exceeds the series length are left nil.
func Compute(prices []float64, volume []int64) model.IndicatorSet {
	set := model.IndicatorSet{Trend: model.TrendInsufficient}
	if len(prices) == 0 {
		return set
	}
	set.CurrentPrice = prices[len(prices)-1]

	set.SMA20 = optional(SMA(prices, 20))
	set.SMA50 = optional(SMA(prices, 50))
	set.SMA200 = optional(SMA(prices, 200))
	set.RSI14 = optional(RSI(prices, RSIPeriod))

	if m, ok := MACD(prices); ok {
		set.MACDLine = model.Float(m.Line)
		if m.HasSignal {
			set.MACDSignal = model.Float(m.Signal)
			set.MACDHistogram = model.Float(m.Histogram)
		}
	}

	if b, ok := BollingerBands(prices, BollingerPeriod, BollingerK); ok {
		set.BollingerUpper = model.Float(b.Upper)
		set.BollingerMiddle = model.Float(b.Middle)
		set.BollingerLower = model.Float(b.Lower)
	}

	set.Momentum10 = optional(Momentum(prices, 10))
	set.Momentum20 = optional(Momentum(prices, 20))
	set.VolatilityPct = optional(VolatilityPct(prices, VolatilityWindow))

	set.GoldenCross = GoldenCross(prices)
	set.DeathCross = DeathCross(prices)
	set.Trend = Trend(set.SMA50, set.SMA200)

	if lv, ok := SupportResistance(prices, LevelsWindow); ok {
		set.Levels = &lv
	}
	set.Volume = AnalyzeVolume(volume)
	return set
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
