// Package store keeps daily price history per symbol.
package store

import (
	"context"

	"StockAdvisor/internal/model"
)

// DayLayout is how trading days are keyed.
const DayLayout = "2006-01-02"

// Store persists daily bars keyed by (symbol, day).
type Store interface {
	// SaveBars upserts bars for symbol.
	SaveBars(ctx context.Context, symbol string, bars []model.Bar) error
	// LoadBars returns the latest limit bars, oldest first. limit <= 0 means all.
	LoadBars(ctx context.Context, symbol string, limit int) ([]model.Bar, error)
	// Symbols lists every symbol with at least one bar, sorted.
	Symbols(ctx context.Context) ([]string, error)
	Close() error
}
