package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"StockAdvisor/internal/model"
	"StockAdvisor/internal/strategy"
)

// Disclaimer closes every text report.
const Disclaimer = "Technical analysis only, not financial advice."

func orNA(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

// FormatReport renders one recommendation as plain text.
func FormatReport(symbol string, asOf time.Time, rec *model.Recommendation) string {
	var b strings.Builder
	ind := &rec.Indicators

	b.WriteString(fmt.Sprintf("%s | %s\n", symbol, asOf.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Action: %s (confidence %.0f%%) | risk %s\n", rec.Action, rec.Confidence*100, rec.RiskLevel))
	b.WriteString(fmt.Sprintf("Signals: %d buy / %d sell / %d hold\n", rec.Counts.Buy, rec.Counts.Sell, rec.Counts.Hold))

	b.WriteString(fmt.Sprintf("Price %.2f | RSI %s | SMA20 %s | SMA50 %s | SMA200 %s\n",
		ind.CurrentPrice, orNA(ind.RSI14, "%.1f"),
		orNA(ind.SMA20, "%.2f"), orNA(ind.SMA50, "%.2f"), orNA(ind.SMA200, "%.2f")))
	b.WriteString(fmt.Sprintf("MACD %s / signal %s | Bollinger %s - %s\n",
		orNA(ind.MACDLine, "%.2f"), orNA(ind.MACDSignal, "%.2f"),
		orNA(ind.BollingerLower, "%.2f"), orNA(ind.BollingerUpper, "%.2f")))
	b.WriteString(fmt.Sprintf("Momentum 10d %s | 20d %s | volatility %s | trend %s\n",
		orNA(ind.Momentum10, "%+.1f%%"), orNA(ind.Momentum20, "%+.1f%%"),
		orNA(ind.VolatilityPct, "%.1f%%"), ind.Trend))

	if ind.Levels != nil {
		b.WriteString(fmt.Sprintf("Support %.2f (%.1f%% below) | Resistance %.2f (%.1f%% above)\n",
			ind.Levels.Support, ind.Levels.DistanceToSupport,
			ind.Levels.Resistance, ind.Levels.DistanceToResistance))
	}
	if ind.Volume != nil {
		spike := ""
		if ind.Volume.Spike {
			spike = " (spike)"
		}
		b.WriteString(fmt.Sprintf("Volume %d vs avg %.0f, ratio %.2f%s\n",
			ind.Volume.Recent, ind.Volume.Average, ind.Volume.Ratio, spike))
	}

	b.WriteString("Why: " + rec.Rationale + "\n")
	b.WriteString(Disclaimer)
	return b.String()
}

// FormatRanking renders a ranked watchlist with its top picks and failures.
func FormatRanking(ranked []strategy.Ranked, failures map[string]error, top int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Watchlist ranking (%d analyzed)\n", len(ranked)))
	for i, r := range ranked {
		rec := r.Recommendation
		b.WriteString(fmt.Sprintf("%d. %-6s %-4s %3.0f%%  risk %s\n",
			i+1, r.Symbol, rec.Action, rec.Confidence*100, rec.RiskLevel))
	}

	picks := strategy.TopPicks(ranked, top)
	if len(picks) == 0 {
		b.WriteString("Top picks: none\n")
	} else {
		names := make([]string, len(picks))
		for i, p := range picks {
			names[i] = p.Symbol
		}
		b.WriteString("Top picks: " + strings.Join(names, ", ") + "\n")
	}

	if len(failures) > 0 {
		syms := make([]string, 0, len(failures))
		for s := range failures {
			syms = append(syms, s)
		}
		sort.Strings(syms)
		b.WriteString("Failed:\n")
		for _, s := range syms {
			b.WriteString(fmt.Sprintf("  %s: %v\n", s, failures[s]))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
