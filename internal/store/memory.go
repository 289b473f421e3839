package store

import (
	"context"
	"sort"
	"sync"

	"StockAdvisor/internal/model"
)

// MemoryStore is an in-process Store used when no database is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	bars map[string]map[string]model.Bar
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bars: make(map[string]map[string]model.Bar)}
}

func (m *MemoryStore) SaveBars(_ context.Context, symbol string, bars []model.Bar) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	days, ok := m.bars[symbol]
	if !ok {
		days = make(map[string]model.Bar)
		m.bars[symbol] = days
	}
	for _, b := range bars {
		days[b.Day.Format(DayLayout)] = b
	}
	return nil
}

func (m *MemoryStore) LoadBars(_ context.Context, symbol string, limit int) ([]model.Bar, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	days := m.bars[symbol]
	out := make([]model.Bar, 0, len(days))
	for _, b := range days {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *MemoryStore) Symbols(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.bars))
	for s, days := range m.bars {
		if len(days) > 0 {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }
