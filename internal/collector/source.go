package collector

import (
	"context"

	"StockAdvisor/internal/model"
)

// Source supplies daily bars for a symbol, oldest first.
type Source interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.Bar, error)
	Name() string
}

// lastN keeps the newest n bars. n <= 0 keeps everything.
func lastN(bars []model.Bar, n int) []model.Bar {
	if n > 0 && len(bars) > n {
		return bars[len(bars)-n:]
	}
	return bars
}
