package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockAdvisor/internal/model"
)

func buy(c float64) model.Signal  { return model.Signal{Direction: model.DirectionBuy, Confidence: c} }
func sell(c float64) model.Signal { return model.Signal{Direction: model.DirectionSell, Confidence: c} }
func hold(c float64) model.Signal { return model.Signal{Direction: model.DirectionHold, Confidence: c} }

func TestAggregate_MajorityBuy(t *testing.T) {
	d := Aggregate([]model.Signal{buy(0.8), buy(0.6), sell(0.9)}, 0.5)
	assert.Equal(t, model.ActionBuy, d.Action)
	assert.InDelta(t, 0.7, d.Confidence, 1e-12)
	assert.Equal(t, model.SignalCounts{Buy: 2, Sell: 1}, d.Counts)
	assert.InDelta(t, 0.9, d.SellScore, 1e-12)
}

func TestAggregate_TieIsHold(t *testing.T) {
	d := Aggregate([]model.Signal{buy(0.9), sell(0.9)}, 0.5)
	assert.Equal(t, model.ActionHold, d.Action)
	assert.Equal(t, 0.5, d.Confidence)
}

func TestAggregate_NoSignals(t *testing.T) {
	for _, signals := range [][]model.Signal{nil, {}, {hold(0.6)}} {
		d := Aggregate(signals, 0.5)
		assert.Equal(t, model.ActionHold, d.Action)
		assert.Equal(t, 0.5, d.Confidence)
		assert.Zero(t, d.BuyScore)
		assert.Zero(t, d.SellScore)
	}
}

func TestAggregate_MajoritySell(t *testing.T) {
	d := Aggregate([]model.Signal{sell(0.7), sell(0.9), buy(0.85), hold(0.6)}, 0.5)
	assert.Equal(t, model.ActionSell, d.Action)
	assert.InDelta(t, 0.8, d.Confidence, 1e-12)
	assert.Equal(t, model.SignalCounts{Buy: 1, Sell: 2, Hold: 1}, d.Counts)
}

func TestAggregate_ScoreMustExceedThreshold(t *testing.T) {
	d := Aggregate([]model.Signal{buy(0.5), buy(0.5)}, 0.5)
	assert.Equal(t, model.ActionHold, d.Action)

	d = Aggregate([]model.Signal{buy(0.6), buy(0.6)}, 0.65)
	assert.Equal(t, model.ActionHold, d.Action)
}

func TestAggregate_ConfidenceCapped(t *testing.T) {
	d := Aggregate([]model.Signal{buy(1.4)}, 0.5)
	assert.Equal(t, model.ActionBuy, d.Action)
	assert.Equal(t, 1.0, d.Confidence)
}
