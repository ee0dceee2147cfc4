// Package solver fills a block's units with people by backtracking search.
//
// At every step the solver picks the most constrained open unit (outside
// roles first, then fewest legal candidates), tries the candidates for it in
// shuffled order and recurses. It only gives up once every branch is
// exhausted; there is no depth or time limit.
package solver

import (
	"math/rand/v2"

	"shiftrota/internal"
	"shiftrota/internal/rotation"
	"shiftrota/internal/slots"
)

// Shuffler permutes candidate lists. *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type identity struct{}

func (identity) Shuffle(int, func(i, j int)) {}

// Identity leaves candidates in roster order, which makes results exact.
var Identity Shuffler = identity{}

// Stats counts search work. Useful for logging and for tests.
type Stats struct {
	Nodes      int `yaml:"nodes" json:"nodes"`
	Backtracks int `yaml:"backtracks" json:"backtracks"`
}

type Option func(*Solver)

func WithShuffler(s Shuffler) Option {
	return func(sv *Solver) {
		if s != nil {
			sv.shuffler = s
		}
	}
}

// WithSeed uses a PCG source seeded with seed, for reproducible runs.
func WithSeed(seed uint64) Option {
	return WithShuffler(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithStats accumulates search counters into st across calls.
func WithStats(st *Stats) Option {
	return func(sv *Solver) { sv.stats = st }
}

type Solver struct {
	shuffler Shuffler
	stats    *Stats
}

// New returns a solver with a freshly seeded random source unless an option
// supplies one.
func New(opts ...Option) *Solver {
	sv := &Solver{
		shuffler: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		stats:    &Stats{},
	}
	for _, opt := range opts {
		opt(sv)
	}
	return sv
}

// Assign is a one-shot New(opts...).Assign.
func Assign(people []string, units []slots.Unit, state rotation.State, opts ...Option) (internal.Assignment, error) {
	return New(opts...).Assign(people, units, state)
}

// Assign maps every unit to a distinct person allowed by state. It returns
// internal.ErrInfeasible when no such mapping exists.
func (sv *Solver) Assign(people []string, units []slots.Unit, state rotation.State) (internal.Assignment, error) {
	s := &search{
		people:   dedupe(people),
		units:    units,
		state:    state,
		shuffler: sv.shuffler,
		stats:    sv.stats,
	}
	open := make([]int, len(units))
	for i := range open {
		open[i] = i
	}
	done, ok := s.run(partial{used: make([]bool, len(s.people))}, open)
	if !ok {
		return nil, internal.ErrInfeasible
	}
	return s.assignment(done), nil
}

func dedupe(people []string) []string {
	seen := make(map[string]bool, len(people))
	out := make([]string, 0, len(people))
	for _, p := range people {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
