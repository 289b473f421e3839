package strategy

import (
	"StockAdvisor/internal/model"
)

// finding is a signal together with the rationale clause describing it.
type finding struct {
	signal model.Signal
	clause string
}

// rule evaluates one indicator. ok is false when the indicator is missing or
// its value falls in a band that emits no signal.
type rule func(set *model.IndicatorSet, r Rules) (f finding, ok bool)

// evaluation order is the order of signals and rationale clauses.
var ruleOrder = []rule{
	rsiRule,
	maShortRule,
	maLongRule,
	macdRule,
	bollingerRule,
	momentumRule,
	goldenCrossRule,
	deathCrossRule,
}

func evaluate(set *model.IndicatorSet, r Rules) []finding {
	var out []finding
	for _, fn := range ruleOrder {
		if f, ok := fn(set, r); ok {
			out = append(out, f)
		}
	}
	return out
}

// GenerateSignals applies every indicator rule to set, in a fixed order:
// RSI, SMA20/50, SMA50/200, MACD, Bollinger, momentum, cross.
func GenerateSignals(set *model.IndicatorSet, r Rules) []model.Signal {
	findings := evaluate(set, r)
	signals := make([]model.Signal, len(findings))
	for i, f := range findings {
		signals[i] = f.signal
	}
	return signals
}

func sig(src model.Source, dir model.Direction, conf float64) model.Signal {
	return model.Signal{Source: src, Direction: dir, Confidence: conf}
}

func rsiRule(set *model.IndicatorSet, r Rules) (finding, bool) {
	if set.RSI14 == nil {
		return finding{}, false
	}
	v := *set.RSI14
	switch {
	case v < rsiOversold:
		return finding{sig(model.SourceRSI, model.DirectionBuy, r.RSIExtreme), "RSI oversold at " + fixed(v, 1)}, true
	case v > rsiOverbought:
		return finding{sig(model.SourceRSI, model.DirectionSell, r.RSIExtreme), "RSI overbought at " + fixed(v, 1)}, true
	case v >= rsiNeutralLow && v <= rsiNeutralHigh:
		return finding{sig(model.SourceRSI, model.DirectionHold, r.RSINeutral), "RSI neutral at " + fixed(v, 1)}, true
	}
	return finding{}, false
}

func maShortRule(set *model.IndicatorSet, r Rules) (finding, bool) {
	if set.SMA20 == nil || set.SMA50 == nil {
		return finding{}, false
	}
	s20, s50 := *set.SMA20, *set.SMA50
	switch {
	case s20 >= maBullishRatio*s50:
		return finding{
			sig(model.SourceMAShort, model.DirectionBuy, r.MAShort),
			"SMA20 " + fixed(s20, 2) + " above SMA50 " + fixed(s50, 2),
		}, true
	case s20 <= maBearishRatio*s50:
		return finding{
			sig(model.SourceMAShort, model.DirectionSell, r.MAShort),
			"SMA20 " + fixed(s20, 2) + " below SMA50 " + fixed(s50, 2),
		}, true
	}
	return finding{}, false
}

func maLongRule(set *model.IndicatorSet, r Rules) (finding, bool) {
	if set.SMA50 == nil || set.SMA200 == nil {
		return finding{}, false
	}
	s50, s200 := *set.SMA50, *set.SMA200
	if s50 > s200 {
		return finding{
			sig(model.SourceMALong, model.DirectionBuy, r.MALong),
			"SMA50 " + fixed(s50, 2) + " above SMA200 " + fixed(s200, 2),
		}, true
	}
	return finding{
		sig(model.SourceMALong, model.DirectionSell, r.MALong),
		"SMA50 " + fixed(s50, 2) + " at or below SMA200 " + fixed(s200, 2),
	}, true
}

func macdRule(set *model.IndicatorSet, r Rules) (finding, bool) {
	if set.MACDLine == nil || set.MACDSignal == nil {
		return finding{}, false
	}
	line, signal := *set.MACDLine, *set.MACDSignal
	if line > signal {
		return finding{
			sig(model.SourceMACD, model.DirectionBuy, r.MACD),
			"MACD " + fixed(line, 2) + " above signal " + fixed(signal, 2),
		}, true
	}
	return finding{
		sig(model.SourceMACD, model.DirectionSell, r.MACD),
		"MACD " + fixed(line, 2) + " at or below signal " + fixed(signal, 2),
	}, true
}

func bollingerRule(set *model.IndicatorSet, r Rules) (finding, bool) {
	if set.BollingerUpper == nil || set.BollingerLower == nil {
		return finding{}, false
	}
	price := set.CurrentPrice
	switch {
	case price < *set.BollingerLower:
		return finding{
			sig(model.SourceBollinger, model.DirectionBuy, r.Bollinger),
			"price " + fixed(price, 2) + " below lower band " + fixed(*set.BollingerLower, 2),
		}, true
	case price > *set.BollingerUpper:
		return finding{
			sig(model.SourceBollinger, model.DirectionSell, r.Bollinger),
			"price " + fixed(price, 2) + " above upper band " + fixed(*set.BollingerUpper, 2),
		}, true
	}
	return finding{}, false
}

func momentumRule(set *model.IndicatorSet, r Rules) (finding, bool) {
	if set.Momentum10 == nil {
		return finding{}, false
	}
	m := *set.Momentum10
	switch {
	case m > momentumBand:
		return finding{sig(model.SourceMomentum, model.DirectionBuy, r.Momentum), "10d momentum " + signed(m, 1) + "%"}, true
	case m < -momentumBand:
		return finding{sig(model.SourceMomentum, model.DirectionSell, r.Momentum), "10d momentum " + signed(m, 1) + "%"}, true
	}
	return finding{}, false
}

func goldenCrossRule(set *model.IndicatorSet, r Rules) (finding, bool) {
	if !set.GoldenCross {
		return finding{}, false
	}
	return finding{sig(model.SourceCross, model.DirectionBuy, r.Cross), "golden cross: SMA50 crossed above SMA200"}, true
}

func deathCrossRule(set *model.IndicatorSet, r Rules) (finding, bool) {
	if !set.DeathCross {
		return finding{}, false
	}
	return finding{sig(model.SourceCross, model.DirectionSell, r.Cross), "death cross: SMA50 crossed below SMA200"}, true
}
