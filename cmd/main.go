package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	service "github.com/okian/marks/internal/app"
	"github.com/okian/marks/internal/config"
	"github.com/okian/marks/internal/demo"
	"github.com/okian/marks/internal/report"
	"github.com/okian/marks/pkg/logger"
	"github.com/okian/marks/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Get().Error(ctx, "marks failed", logger.Error(err))
		os.Exit(1)
	}
}

// run wires config, service, and report building so main stays a
// thin error boundary.
func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("marks", flag.ContinueOnError)
	rosterPath := fs.String("roster", "", "path to a YAML roster file")
	demoMode := fs.Bool("demo", false, "grade a generated sample roster")
	students := fs.Int("students", 0, "demo roster size (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Apply configured log level (fallback to info on invalid input)
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	m := metrics.Get()
	if !cfg.MetricsEnabled {
		// A throwaway registry keeps repeated runs from colliding on
		// duplicate collector registration.
		m = metrics.NewManager(
			metrics.WithMetricsEnabled(false),
			metrics.WithPrometheusRegistry(prometheus.NewRegistry()),
		)
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithTotalPossible(cfg.TotalPossible),
	)
	builder := report.NewBuilder(svc,
		report.WithLogger(log.Named("report")),
		report.WithMetrics(m),
	)

	rep, err := buildReport(ctx, cfg, builder, *rosterPath, *demoMode, *students)
	if err != nil {
		return err
	}
	return rep.Render(out)
}

func buildReport(ctx context.Context, cfg *config.Config, builder *report.Builder, rosterPath string, demoMode bool, students int) (*report.Report, error) {
	switch {
	case demoMode:
		if students <= 0 {
			students = cfg.DemoStudents
		}
		gen := demo.New(
			demo.WithStudentCount(students),
			demo.WithSeed(cfg.DemoSeed),
			demo.WithTotalPossible(cfg.TotalPossible),
		)
		return builder.Build(ctx, gen.Roster())
	case rosterPath != "":
		f, err := os.Open(rosterPath)
		if err != nil {
			return nil, fmt.Errorf("open roster: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		return builder.FromYAML(ctx, f)
	default:
		return nil, errors.New("either -roster or -demo is required")
	}
}
