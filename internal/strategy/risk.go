package strategy

import "StockAdvisor/internal/model"

// ClassifyRisk grades risk from volatility% and RSI, HIGH checked first.
// Missing inputs do not contribute.
func ClassifyRisk(volatilityPct, rsi *float64) model.RiskLevel {
	above := func(v *float64, limit float64) bool { return v != nil && *v > limit }
	below := func(v *float64, limit float64) bool { return v != nil && *v < limit }

	switch {
	case above(volatilityPct, 5) || below(rsi, 25) || above(rsi, 75):
		return model.RiskHigh
	case above(volatilityPct, 3) || below(rsi, 35) || above(rsi, 65):
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
