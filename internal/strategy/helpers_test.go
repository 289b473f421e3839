package strategy

import "StockAdvisor/internal/model"

func rising(n int, start, dailyPct float64) model.PriceSeries {
	out := make(model.PriceSeries, n)
	p := start
	for i := range out {
		out[i] = p
		p *= 1 + dailyPct/100
	}
	return out
}

func constant(n int, v float64) model.PriceSeries {
	out := make(model.PriceSeries, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// reversal trends linearly for 200 observations and then turns for k more.
func reversal(start, slope, turnStep float64, k int) model.PriceSeries {
	prices := make(model.PriceSeries, 0, 200+k)
	for i := 0; i < 200; i++ {
		prices = append(prices, start+slope*float64(i))
	}
	pivot := start + slope*200
	for j := 1; j <= k; j++ {
		prices = append(prices, pivot+turnStep*float64(j))
	}
	return prices
}

func directions(signals []model.Signal) []model.Direction {
	out := make([]model.Direction, len(signals))
	for i, s := range signals {
		out[i] = s.Direction
	}
	return out
}

func sources(signals []model.Signal) []model.Source {
	out := make([]model.Source, len(signals))
	for i, s := range signals {
		out[i] = s.Source
	}
	return out
}
