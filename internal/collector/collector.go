package collector

import (
	"context"
	"fmt"

	"StockAdvisor/internal/model"
	"StockAdvisor/internal/store"
)

// Collector fetches and validates daily history from a Source.
type Collector struct {
	Source Source
	Days   int
}

// NewCollector creates a new Collector requesting days bars per symbol.
func NewCollector(source Source, days int) *Collector {
	return &Collector{Source: source, Days: days}
}

// Collect fetches the daily history of symbol and checks it can be analyzed.
func (c *Collector) Collect(ctx context.Context, symbol string) (*model.Series, error) {
	bars, err := c.Source.FetchDailyBars(ctx, symbol, c.Days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars from %s: %w", c.Source.Name(), err)
	}
	series := &model.Series{Symbol: symbol, Bars: bars}
	if err := model.Validate(series.Closes(), series.Volumes()); err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, err)
	}
	return series, nil
}

// Import copies the collected history of symbol into dst and returns the
// number of bars written.
func (c *Collector) Import(ctx context.Context, symbol string, dst store.Store) (int, error) {
	series, err := c.Collect(ctx, symbol)
	if err != nil {
		return 0, err
	}
	if err := dst.SaveBars(ctx, symbol, series.Bars); err != nil {
		return 0, fmt.Errorf("save %s: %w", symbol, err)
	}
	return len(series.Bars), nil
}
