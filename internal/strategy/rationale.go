package strategy

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"StockAdvisor/internal/model"
)

const (
	// RationaleSeparator joins the clauses of a rationale.
	RationaleSeparator = " | "

	rationaleInsufficient = "insufficient data for technical analysis"
	rationaleNoSignals    = "no decisive technical signals"
)

// fixed renders v with exactly places decimals. NaN and infinities, which
// decimal cannot represent, are rendered by strconv.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// signed is fixed with an explicit leading plus for non-negative values.
func signed(v float64, places int32) string {
	s := fixed(v, places)
	if !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
		return "+" + s
	}
	return s
}

// BuildRationale renders one clause per indicator that produced a signal, in
// signal order, joined by RationaleSeparator. The output depends only on set
// and r.
func BuildRationale(set *model.IndicatorSet, r Rules) string {
	if !set.Available() {
		return rationaleInsufficient
	}
	return joinClauses(evaluate(set, r))
}

func joinClauses(findings []finding) string {
	if len(findings) == 0 {
		return rationaleNoSignals
	}
	clauses := make([]string, len(findings))
	for i, f := range findings {
		clauses[i] = f.clause
	}
	return strings.Join(clauses, RationaleSeparator)
}

var (
	reRSI       = regexp.MustCompile(`^RSI (?:oversold|overbought|neutral) at (-?[0-9.]+)$`)
	reMAShort   = regexp.MustCompile(`^SMA20 (-?[0-9.]+) (?:above|below) SMA50 (-?[0-9.]+)$`)
	reMALong    = regexp.MustCompile(`^SMA50 (-?[0-9.]+) (?:above|at or below) SMA200 (-?[0-9.]+)$`)
	reMACD      = regexp.MustCompile(`^MACD (-?[0-9.]+) (?:above|at or below) signal (-?[0-9.]+)$`)
	reBollLower = regexp.MustCompile(`^price (-?[0-9.]+) below lower band (-?[0-9.]+)$`)
	reBollUpper = regexp.MustCompile(`^price (-?[0-9.]+) above upper band (-?[0-9.]+)$`)
	reMomentum  = regexp.MustCompile(`^10d momentum ([+-][0-9.]+)%$`)
)

// ParseRationale reads back the indicator values referenced in a rationale
// produced by BuildRationale. Values are exact only to the rendered precision.
// Indicators not mentioned stay nil.
func ParseRationale(text string) model.IndicatorSet {
	var set model.IndicatorSet
	for _, clause := range strings.Split(text, RationaleSeparator) {
		switch {
		case reRSI.MatchString(clause):
			m := reRSI.FindStringSubmatch(clause)
			set.RSI14 = parse(m[1])
		case reMAShort.MatchString(clause):
			m := reMAShort.FindStringSubmatch(clause)
			set.SMA20, set.SMA50 = parse(m[1]), parse(m[2])
		case reMALong.MatchString(clause):
			m := reMALong.FindStringSubmatch(clause)
			set.SMA50, set.SMA200 = parse(m[1]), parse(m[2])
		case reMACD.MatchString(clause):
			m := reMACD.FindStringSubmatch(clause)
			set.MACDLine, set.MACDSignal = parse(m[1]), parse(m[2])
		case reBollLower.MatchString(clause):
			m := reBollLower.FindStringSubmatch(clause)
			set.CurrentPrice = value(m[1])
			set.BollingerLower = parse(m[2])
		case reBollUpper.MatchString(clause):
			m := reBollUpper.FindStringSubmatch(clause)
			set.CurrentPrice = value(m[1])
			set.BollingerUpper = parse(m[2])
		case reMomentum.MatchString(clause):
			m := reMomentum.FindStringSubmatch(clause)
			set.Momentum10 = parse(m[1])
		case strings.HasPrefix(clause, "golden cross"):
			set.GoldenCross = true
		case strings.HasPrefix(clause, "death cross"):
			set.DeathCross = true
		}
	}
	return set
}

func parse(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func value(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
