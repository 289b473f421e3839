// Package advisor ties history collection to the strategy engine.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/metrics"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/sizing"
	"StockAdvisor/internal/strategy"
)

// maxParallel bounds concurrent symbol analyses in AnalyzeMany.
const maxParallel = 8

// Report is the recommendation for one symbol at the day of its last bar.
type Report struct {
	Symbol         string                `json:"symbol"`
	AsOf           time.Time             `json:"as_of"`
	Recommendation *model.Recommendation `json:"recommendation"`
}

// Service analyzes symbols using a collector and an engine.
type Service struct {
	collector *collector.Collector
	engine    *strategy.Engine
	sizing    sizing.Params
	log       *zap.SugaredLogger
}

// NewService creates a Service. Position sizing uses sizing.DefaultParams
// until WithSizing is called.
func NewService(c *collector.Collector, e *strategy.Engine, log *zap.SugaredLogger) *Service {
	return &Service{collector: c, engine: e, sizing: sizing.DefaultParams(), log: log}
}

// WithSizing replaces the position sizing parameters.
func (s *Service) WithSizing(p sizing.Params) *Service {
	s.sizing = p
	return s
}

// Analyze collects the history of symbol and computes its recommendation.
func (s *Service) Analyze(ctx context.Context, symbol string) (*Report, error) {
	series, err := s.collector.Collect(ctx, symbol)
	if err != nil {
		metrics.RecordError(Reason(err))
		return nil, err
	}
	rec, err := s.AnalyzeSeries(series.Closes(), series.Volumes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, err)
	}
	s.log.Debugw("analyzed", "symbol", symbol, "action", rec.Action, "confidence", rec.Confidence)
	return &Report{
		Symbol:         symbol,
		AsOf:           series.Bars[len(series.Bars)-1].Day,
		Recommendation: rec,
	}, nil
}

// AnalyzeSeries computes a recommendation for caller-supplied data.
func (s *Service) AnalyzeSeries(prices model.PriceSeries, volume model.VolumeSeries) (*model.Recommendation, error) {
	start := time.Now()
	rec, err := s.engine.ComputeRecommendation(prices, volume)
	if err != nil {
		metrics.RecordError(Reason(err))
		return nil, err
	}
	metrics.RecordRecommendation(string(rec.Action), time.Since(start))
	return rec, nil
}

// AnalyzeMany analyzes symbols concurrently. Symbols that fail are reported
// in failures; the rest are returned ranked.
func (s *Service) AnalyzeMany(ctx context.Context, symbols []string) ([]strategy.Ranked, map[string]error) {
	reports := make([]*Report, len(symbols))
	errs := make([]error, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, sym := range symbols {
		g.Go(func() error {
			reports[i], errs[i] = s.Analyze(gctx, sym)
			return nil
		})
	}
	_ = g.Wait()

	var (
		ranked   []strategy.Ranked
		failures = make(map[string]error)
	)
	for i, sym := range symbols {
		if errs[i] != nil {
			s.log.Warnw("analysis failed", "symbol", sym, "error", errs[i])
			failures[sym] = errs[i]
			continue
		}
		ranked = append(ranked, strategy.Ranked{Symbol: sym, AsOf: reports[i].AsOf, Recommendation: reports[i].Recommendation})
	}
	return strategy.Rank(ranked), failures
}

// Size plans a position at price for a portfolio of the given value.
func (s *Service) Size(portfolioValue, price float64) (sizing.Position, error) {
	return sizing.Plan(portfolioValue, price, s.sizing)
}

// Reason classifies err for metrics and logs.
func Reason(err error) string {
	switch {
	case errors.Is(err, model.ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, model.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, collector.ErrUnknownSymbol):
		return "unknown_symbol"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
