// Package service provides the instrumented facade over the pure
// grading functions. The domain packages stay free of logging and
// metrics; this layer records outcomes and surfaces validation
// failures unchanged to the caller.
package service

import (
	"context"

	"github.com/okian/marks/internal/domain/arith"
	"github.com/okian/marks/internal/domain/grading"
	"github.com/okian/marks/internal/domain/roster"
	"github.com/okian/marks/pkg/logger"
	"github.com/okian/marks/pkg/metrics"
)

// defaultTotalPossible is used when no configuration overrides it.
const defaultTotalPossible = 100

// Service wraps the grading functions with logging and metrics.
type Service struct {
	totalPossible float64

	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager used to record outcomes.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTotalPossible sets the default maximum attainable score.
func WithTotalPossible(total float64) Option {
	return func(s *Service) {
		if total > 0 {
			s.totalPossible = total
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		totalPossible: defaultTotalPossible,
		metrics:       metrics.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TotalPossible returns the configured default maximum score.
func (s *Service) TotalPossible() float64 {
	return s.totalPossible
}

// AverageScore computes the percentage average of scores against
// totalPossible. A zero totalPossible argument falls back to the
// service default before validation runs; any other invalid total is
// rejected by the guards.
func (s *Service) AverageScore(ctx context.Context, scores []float64, totalPossible float64) (float64, error) {
	if totalPossible == 0 {
		totalPossible = s.totalPossible
	}
	pct, err := grading.Average(scores, totalPossible)
	s.metrics.RecordCheck(metrics.FuncAverage, err)
	if err != nil {
		s.debug(ctx, "average rejected", logger.Error(err), logger.Int("scores", len(scores)))
		return 0, err
	}
	s.metrics.ObserveAverage(pct)
	s.debug(ctx, "average computed", logger.Float64("percent", pct), logger.Int("scores", len(scores)))
	return pct, nil
}

// FullName formats the display name for a student record.
func (s *Service) FullName(ctx context.Context, u *roster.User) (string, error) {
	name, err := roster.FullName(u)
	s.metrics.RecordCheck(metrics.FuncFullName, err)
	if err != nil {
		s.debug(ctx, "full name rejected", logger.Error(err))
		return "", err
	}
	return name, nil
}

// Divide returns dividend / divisor with the usual guards.
func (s *Service) Divide(ctx context.Context, dividend, divisor float64) (float64, error) {
	q, err := arith.Divide(dividend, divisor)
	s.metrics.RecordCheck(metrics.FuncDivide, err)
	if err != nil {
		s.debug(ctx, "divide rejected", logger.Error(err))
		return 0, err
	}
	return q, nil
}

func (s *Service) debug(ctx context.Context, msg string, fields ...logger.Field) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(ctx, msg, fields...)
}
