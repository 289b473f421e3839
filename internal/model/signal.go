package model

// Direction is the vote a single indicator rule casts.
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
	DirectionHold Direction = "hold"
)

// Source names the indicator rule that produced a Signal.
type Source string

const (
	SourceRSI       Source = "rsi"
	SourceMAShort   Source = "sma20_sma50"
	SourceMALong    Source = "sma50_sma200"
	SourceMACD      Source = "macd"
	SourceBollinger Source = "bollinger"
	SourceMomentum  Source = "momentum_10d"
	SourceCross     Source = "cross"
)

// Signal is one indicator's vote with its confidence in [0,1].
type Signal struct {
	Source     Source    `json:"source"`
	Direction  Direction `json:"direction"`
	Confidence float64   `json:"confidence"`
}

// Action is the aggregated recommendation.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// RiskLevel classifies volatility and RSI extremes.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// SignalCounts tallies signals per direction.
type SignalCounts struct {
	Buy  int `json:"buy"`
	Sell int `json:"sell"`
	Hold int `json:"hold"`
}

// Total returns the number of signals counted.
func (c SignalCounts) Total() int { return c.Buy + c.Sell + c.Hold }

// Recommendation is the final output of the strategy engine.
type Recommendation struct {
	Action     Action       `json:"action"`
	Confidence float64      `json:"confidence"`
	RiskLevel  RiskLevel    `json:"risk_level"`
	Counts     SignalCounts `json:"signals"`
	Signals    []Signal     `json:"signal_breakdown"`
	Indicators IndicatorSet `json:"indicators"`
	Rationale  string       `json:"rationale"`
}
