package collector

import (
	"context"
	"time"

	"StockAdvisor/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
// Bars, when set for a symbol, is served as is; otherwise a gently rising
// series around Price is generated, ending on End.
type MockSource struct {
	Price float64
	End   time.Time
	Bars  map[string][]model.Bar
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchDailyBars(_ context.Context, symbol string, days int) ([]model.Bar, error) {
	if bars, ok := m.Bars[symbol]; ok {
		return lastN(bars, days), nil
	}
	end := m.End
	if end.IsZero() {
		end = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return generateMockBars(m.Price, days, end), nil
}

func generateMockBars(basePrice float64, count int, end time.Time) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		bars[i] = model.Bar{
			Day:    end.AddDate(0, 0, -(count - 1 - i)),
			Close:  basePrice * (1 + float64(i-count/2)*0.001),
			Volume: 1000000,
		}
	}
	return bars
}
