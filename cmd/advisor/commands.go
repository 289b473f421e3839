package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"StockAdvisor/internal/advisor"
	"StockAdvisor/internal/api"
	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/config"
	"StockAdvisor/internal/metrics"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/notifier"
	"StockAdvisor/internal/scheduler"
	"StockAdvisor/internal/store"
	"StockAdvisor/internal/strategy"
)

// openSource builds the configured history source. The returned close func
// releases any store it opened.
func openSource(cfg *config.Config, log *zap.SugaredLogger) (collector.Source, func(), error) {
	switch cfg.Data.Source {
	case config.SourceStore:
		st, err := store.NewSQLiteStore(cfg.Data.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return collector.NewStoreSource(st), func() { st.Close() }, nil
	case config.SourceMock:
		return &collector.MockSource{Price: 100}, func() {}, nil
	default:
		return collector.NewCSVSource(cfg.Data.CSVDir), func() {}, nil
	}
}

func newService(cfg *config.Config, src collector.Source, log *zap.SugaredLogger) (*advisor.Service, error) {
	engine, err := strategy.NewEngine(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	log.Infow("data source ready", "source", src.Name(), "history_days", cfg.Data.HistoryDays)
	col := collector.NewCollector(src, cfg.Data.HistoryDays)
	return advisor.NewService(col, engine, log).WithSizing(cfg.Sizing.Params), nil
}

func runAnalyze(cfg *config.Config, log *zap.SugaredLogger, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	symbol := fs.String("symbol", "", "symbol to load from the configured data source")
	file := fs.String("file", "", "CSV file with date,close[,volume] columns")
	asJSON := fs.Bool("json", false, "print the recommendation as JSON")
	portfolio := fs.Float64("portfolio", cfg.Sizing.PortfolioValue, "portfolio value for position sizing, 0 to skip")
	fs.Parse(args)

	if (*symbol == "") == (*file == "") {
		return errors.New("exactly one of -symbol or -file is required")
	}

	var (
		src     collector.Source
		closeFn = func() {}
		name    = strings.ToUpper(*symbol)
	)
	if *file != "" {
		name = strings.ToUpper(strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file)))
		src = collector.NewCSVSource(filepath.Dir(*file))
	} else {
		var err error
		if src, closeFn, err = openSource(cfg, log); err != nil {
			return err
		}
	}
	defer closeFn()

	svc, err := newService(cfg, src, log)
	if err != nil {
		return err
	}
	rep, err := svc.Analyze(context.Background(), name)
	if err != nil {
		return err
	}

	var pos any
	if *portfolio > 0 {
		p, err := svc.Size(*portfolio, rep.Recommendation.Indicators.CurrentPrice)
		if err != nil {
			return err
		}
		pos = p
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"report": rep, "position": pos})
	}
	fmt.Println(notifier.FormatReport(rep.Symbol, rep.AsOf, rep.Recommendation))
	if pos != nil {
		b, _ := json.Marshal(pos)
		fmt.Printf("Position: %s\n", b)
	}
	return nil
}

func runImport(cfg *config.Config, log *zap.SugaredLogger, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dir := fs.String("dir", cfg.Data.CSVDir, "directory of <SYMBOL>.csv files")
	dbPath := fs.String("db", cfg.Data.SQLitePath, "SQLite database path")
	symbols := fs.String("symbols", "", "comma separated symbols, default every CSV in -dir")
	fs.Parse(args)

	var list []string
	if *symbols != "" {
		for _, s := range strings.Split(*symbols, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, strings.ToUpper(s))
			}
		}
	} else {
		matches, err := filepath.Glob(filepath.Join(*dir, "*.csv"))
		if err != nil {
			return err
		}
		for _, m := range matches {
			list = append(list, strings.ToUpper(strings.TrimSuffix(filepath.Base(m), ".csv")))
		}
	}
	if len(list) == 0 {
		return fmt.Errorf("no symbols to import from %s", *dir)
	}

	st, err := store.NewSQLiteStore(*dbPath, log)
	if err != nil {
		return err
	}
	defer st.Close()

	col := collector.NewCollector(collector.NewCSVSource(*dir), 0)
	ctx := context.Background()
	var failed int
	for _, sym := range list {
		n, err := col.Import(ctx, sym, st)
		if err != nil {
			failed++
			log.Warnw("import failed", "symbol", sym, "error", err)
			continue
		}
		log.Infow("imported", "symbol", sym, "bars", n)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d symbols failed to import", failed, len(list))
	}
	return nil
}

func runServe(cfg *config.Config, log *zap.SugaredLogger, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	fs.Parse(args)

	metrics.Init()

	src, closeFn, err := openSource(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()
	svc, err := newService(cfg, src, log)
	if err != nil {
		return err
	}

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifiers := notifier.Multi{notifier.NewLogNotifier(log)}
	if cfg.Watch.WebhookURL != "" {
		notifiers = append(notifiers, notifier.NewWebhookNotifier(cfg.Watch.WebhookURL, 3, log))
	}

	sched := scheduler.NewScheduler(ctx, svc, notifiers, cfg.Watch.Symbols, cfg.Watch.Top, log)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Watch.RunOnStart {
		log.Info("run_on_start enabled, scanning watchlist now")
		go sched.RunNow()
	}

	server := api.NewServer(svc, api.Options{
		RateLimit:      cfg.Server.RateLimit,
		Burst:          cfg.Server.Burst,
		Watchlist:      cfg.Watch.Symbols,
		Top:            cfg.Watch.Top,
		PortfolioValue: cfg.Sizing.PortfolioValue,
	}, log)

	log.Infow("advisor is running", "addr", *addr, "min_history", model.MinHistory)
	return server.ListenAndServe(ctx, *addr, cfg.Server.ShutdownTimeout)
}
