package strategy

import (
	"sort"
	"time"

	"StockAdvisor/internal/model"
)

// Ranked pairs a symbol with its recommendation. AsOf is the day of the last
// bar analyzed, when known.
type Ranked struct {
	Symbol         string                `json:"symbol"`
	AsOf           time.Time             `json:"as_of,omitempty"`
	Recommendation *model.Recommendation `json:"recommendation"`
}

var actionOrder = map[model.Action]int{
	model.ActionBuy:  0,
	model.ActionHold: 1,
	model.ActionSell: 2,
}

// Rank orders items BUY before HOLD before SELL, then by confidence
// descending, then by symbol. The input is left untouched.
func Rank(items []Ranked) []Ranked {
	out := make([]Ranked, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Recommendation, out[j].Recommendation
		if actionOrder[a.Action] != actionOrder[b.Action] {
			return actionOrder[a.Action] < actionOrder[b.Action]
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// TopPicks returns at most n BUY recommendations in rank order.
func TopPicks(items []Ranked, n int) []Ranked {
	var picks []Ranked
	for _, it := range Rank(items) {
		if len(picks) >= n {
			break
		}
		if it.Recommendation.Action == model.ActionBuy {
			picks = append(picks, it)
		}
	}
	return picks
}
