package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"StockAdvisor/internal/config"
	"StockAdvisor/internal/logger"
)

const usage = `usage: advisor <command> [flags]

commands:
  analyze   compute a recommendation for one symbol or CSV file
  import    load CSV price files into the SQLite store
  serve     run the HTTP API and the scheduled watchlist scan

run "advisor <command> -h" for command flags`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var run func(*config.Config, *zap.SugaredLogger, []string) error
	switch cmd {
	case "analyze":
		run = runAnalyze
	case "import":
		run = runImport
	case "serve":
		run = runServe
	case "-h", "--help", "help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", cmd, usage)
		os.Exit(2)
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log, args); err != nil {
		log.Errorw(cmd+" failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}
