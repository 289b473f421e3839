package collector

import (
	"context"
	"fmt"

	"StockAdvisor/internal/model"
	"StockAdvisor/internal/store"
)

// StoreSource serves bars previously imported into a store.
type StoreSource struct {
	Store store.Store
}

func NewStoreSource(s store.Store) *StoreSource { return &StoreSource{Store: s} }

func (s *StoreSource) Name() string { return "store" }

func (s *StoreSource) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.Bar, error) {
	bars, err := s.Store.LoadBars(ctx, symbol, days)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrUnknownSymbol)
	}
	return bars, nil
}
