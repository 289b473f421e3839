package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"StockAdvisor/internal/advisor"
	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/model"
	"StockAdvisor/internal/sizing"
	"StockAdvisor/internal/strategy"
)

type recommendationRequest struct {
	Prices         []float64 `json:"prices"`
	Volume         []int64   `json:"volume"`
	PortfolioValue float64   `json:"portfolio_value"`
}

type recommendationResponse struct {
	Symbol         string                `json:"symbol,omitempty"`
	AsOf           string                `json:"as_of,omitempty"`
	Recommendation *model.Recommendation `json:"recommendation"`
	Position       *sizing.Position      `json:"position,omitempty"`
}

type rankingResponse struct {
	Ranked   []strategy.Ranked `json:"ranked"`
	TopPicks []strategy.Ranked `json:"top_picks"`
	Failures map[string]string `json:"failures"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) postRecommendation(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "invalid_request",
			"message":    err.Error(),
			"request_id": c.GetString(requestIDKey),
		})
		return
	}

	rec, err := s.Advisor.AnalyzeSeries(req.Prices, req.Volume)
	if err != nil {
		s.writeError(c, err)
		return
	}
	resp := recommendationResponse{Recommendation: rec}
	if err := s.attachPosition(&resp, req.PortfolioValue); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getSymbolRecommendation(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	var portfolio float64
	if v := c.Query("portfolio"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(c, &model.InvalidInputError{Field: "portfolio", Index: -1, Reason: "not a number"})
			return
		}
		portfolio = p
	}

	rep, err := s.Advisor.Analyze(c.Request.Context(), symbol)
	if err != nil {
		s.writeError(c, err)
		return
	}
	resp := recommendationResponse{
		Symbol:         rep.Symbol,
		AsOf:           rep.AsOf.Format("2006-01-02"),
		Recommendation: rep.Recommendation,
	}
	if err := s.attachPosition(&resp, portfolio); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getRankings(c *gin.Context) {
	symbols := s.opts.Watchlist
	if v := c.Query("symbols"); v != "" {
		symbols = nil
		for _, sym := range strings.Split(v, ",") {
			if sym = strings.ToUpper(strings.TrimSpace(sym)); sym != "" {
				symbols = append(symbols, sym)
			}
		}
	}
	if len(symbols) == 0 {
		s.writeError(c, &model.InvalidInputError{Field: "symbols", Index: -1, Reason: "no symbols given"})
		return
	}

	top := s.opts.Top
	if v := c.Query("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(c, &model.InvalidInputError{Field: "top", Index: -1, Reason: "must be a positive integer"})
			return
		}
		top = n
	}

	ranked, failures := s.Advisor.AnalyzeMany(c.Request.Context(), symbols)
	resp := rankingResponse{
		Ranked:   ranked,
		TopPicks: strategy.TopPicks(ranked, top),
		Failures: make(map[string]string, len(failures)),
	}
	if resp.Ranked == nil {
		resp.Ranked = []strategy.Ranked{}
	}
	if resp.TopPicks == nil {
		resp.TopPicks = []strategy.Ranked{}
	}
	syms := make([]string, 0, len(failures))
	for sym := range failures {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	for _, sym := range syms {
		resp.Failures[sym] = failures[sym].Error()
	}
	c.JSON(http.StatusOK, resp)
}

// attachPosition sizes a position at the current price when a portfolio value
// is known, from the request or the server default.
func (s *Server) attachPosition(resp *recommendationResponse, portfolio float64) error {
	if portfolio == 0 {
		portfolio = s.opts.PortfolioValue
	}
	if portfolio == 0 {
		return nil
	}
	pos, err := s.Advisor.Size(portfolio, resp.Recommendation.Indicators.CurrentPrice)
	if err != nil {
		return err
	}
	resp.Position = &pos
	return nil
}

// writeError maps domain errors onto HTTP statuses.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := gin.H{
		"error":      advisor.Reason(err),
		"message":    err.Error(),
		"request_id": c.GetString(requestIDKey),
	}

	var ide *model.InsufficientDataError
	switch {
	case errors.As(err, &ide):
		status = http.StatusUnprocessableEntity
		body["required"] = ide.Required
		body["got"] = ide.Got
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, collector.ErrUnknownSymbol):
		status = http.StatusNotFound
	default:
		s.log.Errorw("request failed", "request_id", c.GetString(requestIDKey), "error", err)
	}
	c.JSON(status, body)
}
