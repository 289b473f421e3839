package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockAdvisor/internal/model"
)

func ranked(symbol string, action model.Action, conf float64) Ranked {
	return Ranked{Symbol: symbol, Recommendation: &model.Recommendation{Action: action, Confidence: conf}}
}

func symbols(items []Ranked) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Symbol
	}
	return out
}

func TestRank(t *testing.T) {
	items := []Ranked{
		ranked("SELL1", model.ActionSell, 0.9),
		ranked("HOLD1", model.ActionHold, 0.5),
		ranked("BUYB", model.ActionBuy, 0.7),
		ranked("BUYA", model.ActionBuy, 0.7),
		ranked("BUYC", model.ActionBuy, 0.85),
	}
	got := Rank(items)
	assert.Equal(t, []string{"BUYC", "BUYA", "BUYB", "HOLD1", "SELL1"}, symbols(got))
	assert.Equal(t, "SELL1", items[0].Symbol)
}

func TestTopPicks(t *testing.T) {
	items := []Ranked{
		ranked("A", model.ActionBuy, 0.7),
		ranked("B", model.ActionHold, 0.5),
		ranked("C", model.ActionBuy, 0.9),
		ranked("D", model.ActionBuy, 0.6),
	}
	assert.Equal(t, []string{"C", "A"}, symbols(TopPicks(items, 2)))
	assert.Equal(t, []string{"C", "A", "D"}, symbols(TopPicks(items, 10)))
	assert.Empty(t, TopPicks(items, 0))
}
