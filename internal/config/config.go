package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"StockAdvisor/internal/model"
	"StockAdvisor/internal/sizing"
	"StockAdvisor/internal/strategy"
)

// EnvPrefix prefixes every environment override, e.g. ADVISOR_APP_LOG_LEVEL.
const EnvPrefix = "ADVISOR"

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `yaml:"app" envconfig:"APP"`
	Data     DataConfig     `yaml:"data" envconfig:"DATA"`
	Strategy strategy.Rules `yaml:"strategy" envconfig:"STRATEGY"`
	Sizing   SizingConfig   `yaml:"sizing" envconfig:"SIZING"`
	Watch    WatchConfig    `yaml:"watch" envconfig:"WATCH"`
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
}

type AppConfig struct {
	Env      string `yaml:"env" envconfig:"ENV"`
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// DataConfig selects where price history comes from.
type DataConfig struct {
	Source      string `yaml:"source" envconfig:"SOURCE"`
	CSVDir      string `yaml:"csv_dir" envconfig:"CSV_DIR"`
	SQLitePath  string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
	HistoryDays int    `yaml:"history_days" envconfig:"HISTORY_DAYS"`
}

type SizingConfig struct {
	PortfolioValue float64 `yaml:"portfolio_value" envconfig:"PORTFOLIO_VALUE"`
	sizing.Params  `yaml:",inline"`
}

type WatchConfig struct {
	Cron       string   `yaml:"cron" envconfig:"CRON"`
	Symbols    []string `yaml:"symbols" envconfig:"SYMBOLS"`
	Top        int      `yaml:"top" envconfig:"TOP"`
	WebhookURL string   `yaml:"webhook_url" envconfig:"WEBHOOK_URL"`
	RunOnStart bool     `yaml:"run_on_start" envconfig:"RUN_ON_START"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" envconfig:"ADDR"`
	RateLimit       float64       `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	Burst           int           `yaml:"burst" envconfig:"BURST"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// Data sources.
const (
	SourceCSV   = "csv"
	SourceStore = "store"
	SourceMock  = "mock"
)

// Load reads config from a YAML file, then applies environment variable
// overrides (a .env file in the working directory is honored), then defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Data.Source == "" {
		c.Data.Source = SourceCSV
	}
	if c.Data.CSVDir == "" {
		c.Data.CSVDir = "data/prices"
	}
	if c.Data.SQLitePath == "" {
		c.Data.SQLitePath = "data/advisor.db"
	}
	if c.Data.HistoryDays == 0 {
		c.Data.HistoryDays = 260
	}
	c.Strategy = c.Strategy.Merge(strategy.DefaultRules())

	def := sizing.DefaultParams()
	if c.Sizing.PortfolioValue == 0 {
		c.Sizing.PortfolioValue = 100000
	}
	if c.Sizing.RiskPercent == 0 {
		c.Sizing.RiskPercent = def.RiskPercent
	}
	if c.Sizing.StopLossPercent == 0 {
		c.Sizing.StopLossPercent = def.StopLossPercent
	}
	if c.Sizing.MaxPositionPercent == 0 {
		c.Sizing.MaxPositionPercent = def.MaxPositionPercent
	}
	if c.Sizing.TakeProfitPercent == 0 {
		c.Sizing.TakeProfitPercent = def.TakeProfitPercent
	}

	if c.Watch.Cron == "" {
		c.Watch.Cron = "0 30 16 * * 1-5"
	}
	if c.Watch.Top == 0 {
		c.Watch.Top = 5
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.RateLimit == 0 {
		c.Server.RateLimit = 10
	}
	if c.Server.Burst == 0 {
		c.Server.Burst = 20
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceCSV, SourceStore, SourceMock:
	default:
		return fmt.Errorf("data.source %q must be one of csv, store, mock", c.Data.Source)
	}
	if c.Data.HistoryDays < model.MinHistory {
		return fmt.Errorf("data.history_days must be at least %d", model.MinHistory)
	}
	if err := c.Strategy.Validate(); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}
	if c.Sizing.PortfolioValue <= 0 {
		return fmt.Errorf("sizing.portfolio_value must be positive")
	}
	if err := c.Sizing.Params.Validate(); err != nil {
		return err
	}
	if c.Watch.Top < 1 {
		return fmt.Errorf("watch.top must be positive")
	}
	if c.Server.RateLimit <= 0 || c.Server.Burst < 1 {
		return fmt.Errorf("server.rate_limit and server.burst must be positive")
	}
	return nil
}
