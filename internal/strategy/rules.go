package strategy

import "fmt"

// Fixed indicator thresholds.
const (
	rsiOversold    = 30.0
	rsiOverbought  = 70.0
	rsiNeutralLow  = 40.0
	rsiNeutralHigh = 60.0

	maBullishRatio = 1.02
	maBearishRatio = 0.98

	momentumBand = 5.0
)

// Rules holds the confidence attached to each indicator rule and the score an
// action must exceed to win the vote.
type Rules struct {
	RSIExtreme float64 `yaml:"rsi_extreme"`
	RSINeutral float64 `yaml:"rsi_neutral"`
	MAShort    float64 `yaml:"ma_short"`
	MALong     float64 `yaml:"ma_long"`
	MACD       float64 `yaml:"macd"`
	Bollinger  float64 `yaml:"bollinger"`
	Momentum   float64 `yaml:"momentum"`
	Cross      float64 `yaml:"cross"`
	Threshold  float64 `yaml:"threshold"`
}

// DefaultRules returns the documented default constants.
//
//	RSI < 30 / > 70        0.85
//	RSI in [40,60] (hold)  0.60
//	SMA20 vs SMA50 ±2%     0.75
//	SMA50 vs SMA200        0.70
//	MACD vs signal         0.70
//	price vs Bollinger     0.80
//	momentum 10d ±5%       0.65
//	golden / death cross   0.90
//	action threshold       0.50
func DefaultRules() Rules {
	return Rules{
		RSIExtreme: 0.85,
		RSINeutral: 0.60,
		MAShort:    0.75,
		MALong:     0.70,
		MACD:       0.70,
		Bollinger:  0.80,
		Momentum:   0.65,
		Cross:      0.90,
		Threshold:  0.50,
	}
}

// confidenceRanges bounds each tunable constant.
var confidenceRanges = []struct {
	name     string
	get      func(Rules) float64
	min, max float64
}{
	{"rsi_extreme", func(r Rules) float64 { return r.RSIExtreme }, 0.70, 0.85},
	{"rsi_neutral", func(r Rules) float64 { return r.RSINeutral }, 0.30, 0.60},
	{"ma_short", func(r Rules) float64 { return r.MAShort }, 0.60, 0.75},
	{"ma_long", func(r Rules) float64 { return r.MALong }, 0.70, 0.70},
	{"macd", func(r Rules) float64 { return r.MACD }, 0.60, 0.70},
	{"bollinger", func(r Rules) float64 { return r.Bollinger }, 0.80, 0.80},
	{"momentum", func(r Rules) float64 { return r.Momentum }, 0.50, 0.65},
	{"cross", func(r Rules) float64 { return r.Cross }, 0.90, 0.90},
}

// Validate checks every confidence against its allowed range.
func (r Rules) Validate() error {
	for _, c := range confidenceRanges {
		v := c.get(r)
		if v < c.min || v > c.max {
			return fmt.Errorf("rule %s: confidence %.2f outside [%.2f, %.2f]", c.name, v, c.min, c.max)
		}
	}
	if r.Threshold <= 0 || r.Threshold >= 1 {
		return fmt.Errorf("rule threshold: %.2f must be in (0, 1)", r.Threshold)
	}
	return nil
}

// Merge fills zero fields of r from defaults.
func (r Rules) Merge(defaults Rules) Rules {
	pick := func(v, d float64) float64 {
		if v == 0 {
			return d
		}
		return v
	}
	return Rules{
		RSIExtreme: pick(r.RSIExtreme, defaults.RSIExtreme),
		RSINeutral: pick(r.RSINeutral, defaults.RSINeutral),
		MAShort:    pick(r.MAShort, defaults.MAShort),
		MALong:     pick(r.MALong, defaults.MALong),
		MACD:       pick(r.MACD, defaults.MACD),
		Bollinger:  pick(r.Bollinger, defaults.Bollinger),
		Momentum:   pick(r.Momentum, defaults.Momentum),
		Cross:      pick(r.Cross, defaults.Cross),
		Threshold:  pick(r.Threshold, defaults.Threshold),
	}
}
