// Package sizing derives a position size from portfolio value and price using
// fixed-fraction risk management.
package sizing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"StockAdvisor/internal/model"
)

// Params are fractions of portfolio value or price.
type Params struct {
	RiskPercent        float64 `yaml:"risk_percent" json:"risk_percent"`
	StopLossPercent    float64 `yaml:"stop_loss_percent" json:"stop_loss_percent"`
	MaxPositionPercent float64 `yaml:"max_position_percent" json:"max_position_percent"`
	TakeProfitPercent  float64 `yaml:"take_profit_percent" json:"take_profit_percent"`
}

// DefaultParams risks 2% of the portfolio against a 5% stop, caps a single
// position at 20% and targets a 10% gain.
func DefaultParams() Params {
	return Params{
		RiskPercent:        0.02,
		StopLossPercent:    0.05,
		MaxPositionPercent: 0.20,
		TakeProfitPercent:  0.10,
	}
}

// Validate checks every fraction lies in (0, 1].
func (p Params) Validate() error {
	for name, v := range map[string]float64{
		"risk_percent":         p.RiskPercent,
		"stop_loss_percent":    p.StopLossPercent,
		"max_position_percent": p.MaxPositionPercent,
		"take_profit_percent":  p.TakeProfitPercent,
	} {
		if !(v > 0 && v <= 1) {
			return fmt.Errorf("sizing %s: %v must be in (0, 1]", name, v)
		}
	}
	return nil
}

// Position is a sized trade. Money values are rounded to cents.
type Position struct {
	Shares          int64           `json:"shares"`
	PositionValue   decimal.Decimal `json:"position_value"`
	StopLoss        decimal.Decimal `json:"stop_loss"`
	TakeProfit      decimal.Decimal `json:"take_profit"`
	RiskAmount      decimal.Decimal `json:"risk_amount"`
	RiskRewardRatio decimal.Decimal `json:"risk_reward_ratio"`
}

// Plan sizes a position so that hitting the stop loses at most RiskPercent of
// the portfolio, never exceeding MaxPositionPercent of it.
func Plan(portfolioValue, price float64, p Params) (Position, error) {
	if !finite(portfolioValue) {
		return Position{}, &model.InvalidInputError{Field: "portfolio_value", Index: -1, Reason: "must be finite"}
	}
	if portfolioValue <= 0 {
		return Position{}, &model.InvalidInputError{Field: "portfolio_value", Index: -1, Reason: "must be positive"}
	}
	if !finite(price) {
		return Position{}, &model.InvalidInputError{Field: "price", Index: -1, Reason: "must be finite"}
	}
	if price <= 0 {
		return Position{}, &model.InvalidInputError{Field: "price", Index: -1, Reason: "must be positive"}
	}
	if err := p.Validate(); err != nil {
		return Position{}, err
	}

	one := decimal.NewFromInt(1)
	pv := decimal.NewFromFloat(portfolioValue)
	px := decimal.NewFromFloat(price)
	stopPct := decimal.NewFromFloat(p.StopLossPercent)
	takePct := decimal.NewFromFloat(p.TakeProfitPercent)

	riskAmount := pv.Mul(decimal.NewFromFloat(p.RiskPercent))
	perShareRisk := px.Mul(stopPct)

	shares := riskAmount.Div(perShareRisk).Floor()
	maxShares := pv.Mul(decimal.NewFromFloat(p.MaxPositionPercent)).Div(px).Floor()
	if maxShares.LessThan(shares) {
		shares = maxShares
	}

	return Position{
		Shares:          shares.IntPart(),
		PositionValue:   shares.Mul(px).Round(2),
		StopLoss:        px.Mul(one.Sub(stopPct)).Round(2),
		TakeProfit:      px.Mul(one.Add(takePct)).Round(2),
		RiskAmount:      riskAmount.Round(2),
		RiskRewardRatio: takePct.Div(stopPct).Round(2),
	}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
