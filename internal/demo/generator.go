// Package demo generates deterministic sample rosters so the CLI can
// be exercised without an input file.
package demo

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/marks/internal/report"
)

// Default generator configuration constants.
const (
	defaultStudentCount = 10
	defaultSeed         = 42
	defaultTotal        = 100
	scoresPerStudent    = 5
)

// Performance profiles for generated score spreads.
const (
	caseElitePerformer = iota
	caseHighPerformer
	caseAveragePerformer
	caseLowPerformer
	profileCount
)

// invalidRowInterval controls how often a deliberately broken entry
// is emitted so reports demonstrate the guard clauses.
const invalidRowInterval = 7

var firstNames = []string{
	"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Radia",
	"Dennis", "Margaret", "Ken", "Frances", "John", "Kathleen", "Tony",
}

var lastNames = []string{
	"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth",
	"Perlman", "Ritchie", "Hamilton", "Thompson", "Allen", "Backus",
	"Booth", "Hoare",
}

// Generator produces sample rosters with a seeded random source.
type Generator struct {
	count       int
	seed        int64
	total       float64
	invalidRows bool
	rng         *rand.Rand
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithStudentCount sets the number of generated students.
func WithStudentCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.count = n
		}
	}
}

// WithSeed seeds the random source for reproducible rosters.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithTotalPossible sets the maximum attainable score for all entries.
func WithTotalPossible(total float64) Option {
	return func(g *Generator) {
		if total > 0 {
			g.total = total
		}
	}
}

// WithInvalidRows toggles the deliberately broken demo entries.
func WithInvalidRows(enabled bool) Option {
	return func(g *Generator) {
		g.invalidRows = enabled
	}
}

// New creates a Generator with configuration options applied.
func New(opts ...Option) *Generator {
	g := &Generator{
		count:       defaultStudentCount,
		seed:        defaultSeed,
		total:       defaultTotal,
		invalidRows: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic seed for reproducible demo data
	return g
}

// Roster generates the sample roster.
func (g *Generator) Roster() *report.Roster {
	students := make([]report.Student, 0, g.count)
	for i := 0; i < g.count; i++ {
		st := report.Student{
			ID:        uuid.New().String(),
			FirstName: firstNames[g.rng.Intn(len(firstNames))],
			LastName:  lastNames[g.rng.Intn(len(lastNames))],
			Scores:    g.scores(),
		}
		if g.invalidRows && (i+1)%invalidRowInterval == 0 {
			g.breakEntry(&st, i)
		}
		students = append(students, st)
	}
	return &report.Roster{Students: students}
}

// scores draws a score spread for one performance profile.
func (g *Generator) scores() []float64 {
	profile := g.rng.Intn(profileCount)
	out := make([]float64, scoresPerStudent)
	for i := range out {
		switch profile {
		case caseElitePerformer:
			out[i] = g.span(0.9, 1.0)
		case caseHighPerformer:
			out[i] = g.span(0.7, 0.9)
		case caseAveragePerformer:
			out[i] = g.span(0.4, 0.7)
		default:
			out[i] = g.span(0.0, 0.4)
		}
	}
	return out
}

// span returns a random score between lo and hi fractions of total.
func (g *Generator) span(lo, hi float64) float64 {
	return (lo + g.rng.Float64()*(hi-lo)) * g.total
}

// breakEntry corrupts one entry so reports show guard failures.
func (g *Generator) breakEntry(st *report.Student, i int) {
	switch i % 3 {
	case 0:
		st.FirstName = "   "
	case 1:
		st.Scores = []float64{}
	default:
		st.Scores = append(st.Scores, g.total*2)
	}
}
