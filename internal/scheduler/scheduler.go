package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"StockAdvisor/internal/advisor"
	"StockAdvisor/internal/metrics"
	"StockAdvisor/internal/notifier"
)

// Scheduler periodically scans a watchlist and publishes the reports.
type Scheduler struct {
	Cron     *cron.Cron
	Advisor  *advisor.Service
	Notifier notifier.Notifier
	Symbols  []string
	Top      int
	Ctx      context.Context
	log      *zap.SugaredLogger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *advisor.Service, n notifier.Notifier, symbols []string, top int, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Advisor:  svc,
		Notifier: n,
		Symbols:  symbols,
		Top:      top,
		Ctx:      ctx,
		log:      log,
	}
}

// Register schedules the watchlist scan on a six-field cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() { _ = s.RunNow() }); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Infow("scheduler started", "symbols", len(s.Symbols))
}

// Stop stops the cron scheduler and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// RunNow scans the watchlist immediately.
func (s *Scheduler) RunNow() error {
	err := s.scan()
	metrics.RecordScan(err)
	return err
}

func (s *Scheduler) scan() error {
	runID := uuid.NewString()
	log := s.log.With("run_id", runID)
	if len(s.Symbols) == 0 {
		log.Info("watchlist empty, nothing to scan")
		return nil
	}
	log.Infow("running watchlist scan", "symbols", s.Symbols)

	ranked, failures := s.Advisor.AnalyzeMany(s.Ctx, s.Symbols)
	for sym, err := range failures {
		log.Warnw("symbol skipped", "symbol", sym, "reason", advisor.Reason(err), "error", err)
	}

	var errs []error
	for _, r := range ranked {
		report := notifier.FormatReport(r.Symbol, r.AsOf, r.Recommendation)
		if err := s.Notifier.Notify(s.Ctx, r.Symbol, report); err != nil {
			errs = append(errs, fmt.Errorf("notify %s: %w", r.Symbol, err))
		}
	}
	summary := notifier.FormatRanking(ranked, failures, s.Top)
	if err := s.Notifier.Notify(s.Ctx, "watchlist", summary); err != nil {
		errs = append(errs, fmt.Errorf("notify summary: %w", err))
	}

	if len(ranked) == 0 {
		errs = append(errs, fmt.Errorf("all %d symbols failed", len(failures)))
	}
	if err := errors.Join(errs...); err != nil {
		log.Errorw("scan finished with errors", "error", err)
		return err
	}
	log.Infow("scan finished", "analyzed", len(ranked), "failed", len(failures))
	return nil
}
