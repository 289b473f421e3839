package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"StockAdvisor/internal/advisor"
	"StockAdvisor/internal/metrics"
)

// Options tune the HTTP adapter.
type Options struct {
	RateLimit float64
	Burst     int
	// Watchlist is ranked when /v1/rankings is called without symbols.
	Watchlist []string
	Top       int
	// PortfolioValue sizes positions when a request does not name one.
	PortfolioValue float64
}

// Server wires HTTP endpoints around the advisor service.
type Server struct {
	Router  *gin.Engine
	Advisor *advisor.Service
	opts    Options
	log     *zap.SugaredLogger
}

func NewServer(svc *advisor.Service, opts Options, log *zap.SugaredLogger) *Server {
	r := gin.New()

	// Middleware stack (order matters!)
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLogger(log))
	r.Use(RateLimitMiddleware(opts.RateLimit, opts.Burst, log))

	s := &Server{Router: r, Advisor: svc, opts: opts, log: log}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.GET("/healthz", s.health)
	s.Router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := s.Router.Group("/v1")
	{
		v1.POST("/recommendations", s.postRecommendation)
		v1.GET("/symbols/:symbol/recommendation", s.getSymbolRecommendation)
		v1.GET("/rankings", s.getRankings)
	}
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully, waiting at most shutdownTimeout for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{Addr: addr, Handler: s.Router}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
