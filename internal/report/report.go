// Package report builds plain-text grade reports from a student
// roster. Validation failures do not abort the batch: a rejected
// student keeps its row with the failure message while the rest of
// the roster is graded normally.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	service "github.com/okian/marks/internal/app"
	"github.com/okian/marks/internal/domain/roster"
	"github.com/okian/marks/internal/domain/types"
	"github.com/okian/marks/pkg/logger"
	"github.com/okian/marks/pkg/metrics"
)

// Student is one roster entry: an identity plus earned scores.
// TotalPossible overrides the tool-wide default when set.
type Student struct {
	ID            string    `yaml:"id,omitempty"`
	FirstName     string    `yaml:"first_name"`
	LastName      string    `yaml:"last_name"`
	Scores        []float64 `yaml:"scores"`
	TotalPossible float64   `yaml:"total_possible,omitempty"`
}

// Roster is the decoded input document.
type Roster struct {
	Students []Student `yaml:"students"`
}

// Report holds the graded rows and batch summary.
type Report struct {
	Results      []types.StudentResult
	ClassAverage float64
	Graded       int
	Rejected     int
}

// Builder turns rosters into reports via the instrumented service.
type Builder struct {
	svc     *service.Service
	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithLogger sets a custom logger for the builder.
func WithLogger(l logger.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics sets the metrics manager used for report counters.
func WithMetrics(m *metrics.Manager) Option {
	return func(b *Builder) {
		if m != nil {
			b.metrics = m
		}
	}
}

// NewBuilder constructs a Builder on top of the given service.
func NewBuilder(svc *service.Service, opts ...Option) *Builder {
	b := &Builder{
		svc:     svc,
		metrics: metrics.Get(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DecodeRoster parses a YAML roster document.
func DecodeRoster(r io.Reader) (*Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&roster); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeRoster, err)
	}
	return &roster, nil
}

// FromYAML decodes a roster and builds its report.
func (b *Builder) FromYAML(ctx context.Context, r io.Reader) (*Report, error) {
	roster, err := DecodeRoster(r)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx, roster)
}

// Build grades every student on the roster. The returned error is
// non-nil only for roster-level problems; per-student validation
// failures land in the corresponding result row.
func (b *Builder) Build(ctx context.Context, roster *Roster) (*Report, error) {
	if roster == nil || len(roster.Students) == 0 {
		return nil, ErrEmptyRoster
	}

	rep := &Report{Results: make([]types.StudentResult, 0, len(roster.Students))}
	var sum float64

	for i, st := range roster.Students {
		res := b.gradeStudent(ctx, i, st)
		if res.Failed() {
			rep.Rejected++
		} else {
			rep.Graded++
			sum += res.Average
		}
		rep.Results = append(rep.Results, res)
	}

	if rep.Graded > 0 {
		// The divider runs through the same guard pipeline as
		// caller-facing division.
		avg, err := b.svc.Divide(ctx, sum, float64(rep.Graded))
		if err != nil {
			return nil, err
		}
		rep.ClassAverage = avg
	}

	b.metrics.RecordReport(len(rep.Results), rep.Rejected)
	if b.logger != nil {
		b.logger.Info(ctx, "report built",
			logger.Int("students", len(rep.Results)),
			logger.Int("graded", rep.Graded),
			logger.Int("rejected", rep.Rejected),
			logger.Float64("class_average", rep.ClassAverage),
		)
	}
	return rep, nil
}

// gradeStudent produces one result row. The first guard failure for
// a student wins; grading is skipped once the name is rejected.
func (b *Builder) gradeStudent(ctx context.Context, idx int, st Student) types.StudentResult {
	user := st.User()
	name, err := b.svc.FullName(ctx, &user)
	if err != nil {
		// No usable name; fall back to the roster id or position.
		label := st.ID
		if label == "" {
			label = fmt.Sprintf("student #%d", idx+1)
		}
		return types.StudentResult{FullName: label, Err: err.Error()}
	}

	pct, err := b.svc.AverageScore(ctx, st.Scores, st.TotalPossible)
	if err != nil {
		return types.StudentResult{FullName: name, Err: err.Error()}
	}
	return types.StudentResult{FullName: name, Average: pct}
}

// User converts the roster entry to a domain record.
func (s Student) User() roster.User {
	return roster.User{FirstName: s.FirstName, LastName: s.LastName}
}

// Render writes the report as aligned plain text.
func (r *Report) Render(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("Grade Report\n")
	sb.WriteString("============\n")
	for i, res := range r.Results {
		if res.Failed() {
			fmt.Fprintf(&sb, "%3d. %-30s REJECTED: %s\n", i+1, res.FullName, res.Err)
			continue
		}
		fmt.Fprintf(&sb, "%3d. %-30s %6.1f%%\n", i+1, res.FullName, res.Average)
	}
	if r.Graded > 0 {
		fmt.Fprintf(&sb, "\nClass average: %.1f%% (%d graded, %d rejected)\n", r.ClassAverage, r.Graded, r.Rejected)
	} else {
		fmt.Fprintf(&sb, "\nNo students graded (%d rejected)\n", r.Rejected)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
