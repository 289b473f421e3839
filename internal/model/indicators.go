package model

import "math"

// Trend labels derived from SMA50 vs SMA200.
const (
	TrendBullish      = "bullish"
	TrendBearish      = "bearish"
	TrendNeutral      = "neutral"
	TrendInsufficient = "insufficient_data"
)

// IndicatorSet holds every computed technical indicator for one price series.
// A nil field means the series was shorter than the indicator's lookback.
type IndicatorSet struct {
	CurrentPrice float64 `json:"current_price"`

	SMA20  *float64 `json:"sma_20"`
	SMA50  *float64 `json:"sma_50"`
	SMA200 *float64 `json:"sma_200"`
	RSI14  *float64 `json:"rsi_14"`

	MACDLine      *float64 `json:"macd_line"`
	MACDSignal    *float64 `json:"macd_signal"`
	MACDHistogram *float64 `json:"macd_histogram"`

	BollingerUpper  *float64 `json:"bollinger_upper"`
	BollingerMiddle *float64 `json:"bollinger_middle"`
	BollingerLower  *float64 `json:"bollinger_lower"`

	Momentum10    *float64 `json:"momentum_10d"`
	Momentum20    *float64 `json:"momentum_20d"`
	VolatilityPct *float64 `json:"volatility_pct"`

	GoldenCross bool   `json:"golden_cross"`
	DeathCross  bool   `json:"death_cross"`
	Trend       string `json:"trend"`

	Levels *PriceLevels   `json:"levels,omitempty"`
	Volume *VolumeProfile `json:"volume,omitempty"`
}

func (s *IndicatorSet) values() []*float64 {
	return []*float64{
		s.SMA20, s.SMA50, s.SMA200, s.RSI14,
		s.MACDLine, s.MACDSignal, s.MACDHistogram,
		s.BollingerUpper, s.BollingerMiddle, s.BollingerLower,
		s.Momentum10, s.Momentum20, s.VolatilityPct,
	}
}

// Available reports whether at least one numeric indicator could be computed.
func (s *IndicatorSet) Available() bool {
	for _, v := range s.values() {
		if v != nil {
			return true
		}
	}
	return false
}

// Finite reports whether every computed indicator is a finite number.
// Prices close to the float64 limit overflow the sums behind the averages.
func (s *IndicatorSet) Finite() bool {
	if math.IsNaN(s.CurrentPrice) || math.IsInf(s.CurrentPrice, 0) {
		return false
	}
	for _, v := range s.values() {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return false
		}
	}
	return true
}

// PriceLevels are support and resistance over a recent window of closes.
type PriceLevels struct {
	Support              float64 `json:"support"`
	Resistance           float64 `json:"resistance"`
	DistanceToSupport    float64 `json:"distance_to_support_pct"`
	DistanceToResistance float64 `json:"distance_to_resistance_pct"`
}

// VolumeProfile summarizes the volume series.
type VolumeProfile struct {
	Average float64 `json:"average"`
	Recent  int64   `json:"recent"`
	Ratio   float64 `json:"ratio"`
	Spike   bool    `json:"spike"`
}

// Float returns a pointer to v, for building IndicatorSets.
func Float(v float64) *float64 { return &v }
