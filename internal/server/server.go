// Package server exposes the retirement planner over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	stddec "github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/store"
)

// Planner is the calculation surface the handlers need.
type Planner interface {
	Validate(profile domain.FinancialProfile) domain.ValidationErrors
	RunPlan(ctx context.Context, profile domain.FinancialProfile, scenarioID string) (*domain.PlanResult, error)
	GenerateProjections(profile domain.FinancialProfile, annualReturnRate, inflationRate stddec.Decimal) []domain.YearlyProjection
}

// RunStore records plan runs. It is optional; without one the history
// endpoints are not registered.
type RunStore interface {
	SaveRun(ctx context.Context, result *domain.PlanResult) (string, error)
	GetRun(ctx context.Context, id string) (*store.Run, error)
	ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error)
}

// Server wires the planner, the optional run store and the HTTP settings.
type Server struct {
	planner Planner
	runs    RunStore
	log     *zap.Logger
	cfg     config.ServerConfig
}

// Option customizes a Server.
type Option func(*Server)

// WithRunStore enables run recording and the history endpoints.
func WithRunStore(rs RunStore) Option {
	return func(s *Server) { s.runs = rs }
}

// WithLogger sets the access and error logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a Server. A zero cfg falls back to config.DefaultAppConfig.
func New(planner Planner, cfg config.ServerConfig, opts ...Option) *Server {
	defaults := config.DefaultAppConfig().Server
	if cfg.Addr == "" {
		cfg.Addr = defaults.Addr
	}
	if cfg.RequestTimeout.Duration <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	s := &Server{planner: planner, log: zap.NewNop(), cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(
		RequestID(),
		AccessLog(s.log),
		Recovery(s.log),
		CORS(s.cfg.AllowedOrigins),
		Timeout(s.cfg.RequestTimeout.Duration),
	)

	api := r.Group("/api/retirement")
	api.GET("/health", s.health)
	api.POST("/scenarios", s.generateScenarios)
	api.POST("/projections", s.generateProjections)
	api.POST("/metrics", s.dashboardMetrics)
	if s.runs != nil {
		api.GET("/runs", s.listRuns)
		api.GET("/runs/:id", s.getRun)
	}
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
