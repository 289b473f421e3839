package strategy

import (
	"fmt"

	"StockAdvisor/internal/calculator"
	"StockAdvisor/internal/model"
)

// Engine turns a price series into a Recommendation. Its rules never change
// after construction, so one Engine may serve concurrent callers.
type Engine struct {
	rules Rules
}

// NewEngine validates rules and returns an Engine using them.
func NewEngine(rules Rules) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("strategy rules: %w", err)
	}
	return &Engine{rules: rules}, nil
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules { return e.rules }

var defaultEngine = &Engine{rules: DefaultRules()}

// ComputeRecommendation runs the default engine.
func ComputeRecommendation(prices model.PriceSeries, volume model.VolumeSeries) (*model.Recommendation, error) {
	return defaultEngine.ComputeRecommendation(prices, volume)
}

// ComputeRecommendation computes indicators, votes on their signals and
// explains the result. It fails with *model.InvalidInputError for unusable
// input and *model.InsufficientDataError for fewer than model.MinHistory
// prices. Prices so large that an indicator overflows are invalid input.
// volume may be nil.
func (e *Engine) ComputeRecommendation(prices model.PriceSeries, volume model.VolumeSeries) (*model.Recommendation, error) {
	if err := model.Validate(prices, volume); err != nil {
		return nil, err
	}
	if len(prices) < model.MinHistory {
		return nil, &model.InsufficientDataError{Required: model.MinHistory, Got: len(prices)}
	}

	set := calculator.Compute(prices, volume)
	if !set.Finite() {
		return nil, &model.InvalidInputError{Field: "prices", Index: -1, Reason: "values too large to compute indicators"}
	}

	// Step a: indicator rules
	findings := evaluate(&set, e.rules)
	signals := make([]model.Signal, len(findings))
	for i, f := range findings {
		signals[i] = f.signal
	}

	// Step b: vote
	d := Aggregate(signals, e.rules.Threshold)

	// Step c: explain
	rationale := rationaleInsufficient
	if set.Available() {
		rationale = joinClauses(findings)
	}

	return &model.Recommendation{
		Action:     d.Action,
		Confidence: d.Confidence,
		RiskLevel:  ClassifyRisk(set.VolatilityPct, set.RSI14),
		Counts:     d.Counts,
		Signals:    signals,
		Indicators: set,
		Rationale:  rationale,
	}, nil
}
