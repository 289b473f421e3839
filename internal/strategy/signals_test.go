package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockAdvisor/internal/model"
)

func TestGenerateSignals_Order(t *testing.T) {
	f := model.Float
	set := &model.IndicatorSet{
		CurrentPrice:   90,
		RSI14:          f(25),
		SMA20:          f(110),
		SMA50:          f(100),
		SMA200:         f(95),
		MACDLine:       f(1.2),
		MACDSignal:     f(0.8),
		BollingerUpper: f(120),
		BollingerLower: f(95),
		Momentum10:     f(6),
		GoldenCross:    true,
	}
	signals := GenerateSignals(set, DefaultRules())
	assert.Equal(t, []model.Source{
		model.SourceRSI, model.SourceMAShort, model.SourceMALong, model.SourceMACD,
		model.SourceBollinger, model.SourceMomentum, model.SourceCross,
	}, sources(signals))
	for _, s := range signals {
		assert.Equal(t, model.DirectionBuy, s.Direction, s.Source)
	}
	assert.Equal(t, 0.85, signals[0].Confidence)
	assert.Equal(t, 0.9, signals[6].Confidence)
}

func TestGenerateSignals_Bearish(t *testing.T) {
	f := model.Float
	set := &model.IndicatorSet{
		CurrentPrice:   130,
		RSI14:          f(75),
		SMA20:          f(90),
		SMA50:          f(100),
		SMA200:         f(100),
		MACDLine:       f(-0.5),
		MACDSignal:     f(-0.5),
		BollingerUpper: f(120),
		BollingerLower: f(80),
		Momentum10:     f(-7),
		DeathCross:     true,
	}
	signals := GenerateSignals(set, DefaultRules())
	assert.Len(t, signals, 7)
	for _, s := range signals {
		assert.Equal(t, model.DirectionSell, s.Direction, s.Source)
	}
}

func TestGenerateSignals_RSIBands(t *testing.T) {
	tests := []struct {
		rsi  float64
		want []model.Direction
	}{
		{29.9, []model.Direction{model.DirectionBuy}},
		{30, []model.Direction{}},
		{35, []model.Direction{}},
		{40, []model.Direction{model.DirectionHold}},
		{60, []model.Direction{model.DirectionHold}},
		{65, []model.Direction{}},
		{70, []model.Direction{}},
		{70.1, []model.Direction{model.DirectionSell}},
	}
	for _, tt := range tests {
		set := &model.IndicatorSet{RSI14: model.Float(tt.rsi)}
		assert.Equal(t, tt.want, directions(GenerateSignals(set, DefaultRules())), "rsi %v", tt.rsi)
	}
}

func TestGenerateSignals_QuietBands(t *testing.T) {
	f := model.Float
	set := &model.IndicatorSet{
		CurrentPrice:   100,
		SMA20:          f(101),
		SMA50:          f(100),
		BollingerUpper: f(105),
		BollingerLower: f(95),
		Momentum10:     f(4.9),
	}
	assert.Empty(t, GenerateSignals(set, DefaultRules()))
}

func TestGenerateSignals_MissingIndicatorsEmitNothing(t *testing.T) {
	f := model.Float
	set := &model.IndicatorSet{
		CurrentPrice: 100,
		SMA50:        f(100),
		MACDLine:     f(2),
	}
	assert.Empty(t, GenerateSignals(set, DefaultRules()))
}

func TestGenerateSignals_UsesRuleConfidences(t *testing.T) {
	rules := DefaultRules()
	rules.RSIExtreme = 0.7
	signals := GenerateSignals(&model.IndicatorSet{RSI14: model.Float(10)}, rules)
	assert.Equal(t, []model.Signal{{Source: model.SourceRSI, Direction: model.DirectionBuy, Confidence: 0.7}}, signals)
}
