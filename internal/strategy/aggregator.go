package strategy

import "StockAdvisor/internal/model"

// holdConfidence is reported whenever neither side wins the vote.
const holdConfidence = 0.5

// Decision is the outcome of the vote over a list of signals.
type Decision struct {
	Action     model.Action
	Confidence float64
	Counts     model.SignalCounts
	BuyScore   float64
	SellScore  float64
}

// Aggregate counts signals per direction and averages the confidence of the
// buy and sell sides. A side wins only with strictly more signals than the
// other and a mean confidence above threshold; everything else is HOLD at 0.5.
func Aggregate(signals []model.Signal, threshold float64) Decision {
	var (
		d               Decision
		buySum, sellSum float64
	)
	for _, s := range signals {
		switch s.Direction {
		case model.DirectionBuy:
			d.Counts.Buy++
			buySum += s.Confidence
		case model.DirectionSell:
			d.Counts.Sell++
			sellSum += s.Confidence
		default:
			d.Counts.Hold++
		}
	}
	if d.Counts.Buy > 0 {
		d.BuyScore = buySum / float64(d.Counts.Buy)
	}
	if d.Counts.Sell > 0 {
		d.SellScore = sellSum / float64(d.Counts.Sell)
	}

	switch {
	case d.Counts.Buy > d.Counts.Sell && d.BuyScore > threshold:
		d.Action, d.Confidence = model.ActionBuy, min(d.BuyScore, 1.0)
	case d.Counts.Sell > d.Counts.Buy && d.SellScore > threshold:
		d.Action, d.Confidence = model.ActionSell, min(d.SellScore, 1.0)
	default:
		d.Action, d.Confidence = model.ActionHold, holdConfidence
	}
	return d
}
