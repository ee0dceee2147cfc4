package scheduler

import (
	"errors"
	"shiftrota/internal"
	"shiftrota/internal/rotation"
	"shiftrota/internal/slots"
	"shiftrota/internal/solver"
	"shiftrota/internal/util"
	"time"

	"go.uber.org/zap"
)

// Scheduler walks the blocks of a session in order, threading the rotation
// state from each block into the next.
type Scheduler struct {
	solver    *solver.Solver
	stats     solver.Stats
	seed      *uint64
	runID     string
	keepGoing bool
}

type Option func(*Scheduler)

// WithSeed makes candidate shuffling reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Scheduler) { s.seed = &seed }
}

// WithShuffler swaps the randomness source, e.g. solver.Identity in tests.
func WithShuffler(sh solver.Shuffler) Option {
	return func(s *Scheduler) {
		s.solver = solver.New(solver.WithShuffler(sh), solver.WithStats(&s.stats))
	}
}

// WithRunID fixes the run id, so a run directory can be named before the
// run starts.
func WithRunID(id string) Option {
	return func(s *Scheduler) { s.runID = id }
}

// WithKeepGoing continues past a failed block. The failed block resets the
// rotation memory, since nobody was assigned in it.
func WithKeepGoing(v bool) Option {
	return func(s *Scheduler) { s.keepGoing = v }
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.solver == nil {
		solverOpts := []solver.Option{solver.WithStats(&s.stats)}
		if s.seed != nil {
			solverOpts = append(solverOpts, solver.WithSeed(*s.seed))
		}
		s.solver = solver.New(solverOpts...)
	}
	return s
}

// Run assigns every block starting from initial. By default it stops at the
// first failing block and returns the results so far with a
// *internal.BlockError. In keep-going mode all block errors are joined.
func (s *Scheduler) Run(blocks []internal.Block, initial rotation.State) (*Run, error) {
	id := s.runID
	if id == "" {
		id = util.NewUUID()
	}
	run := &Run{
		ID:      id,
		Seed:    s.seed,
		Started: time.Now(),
		Results: make([]internal.BlockResult, 0, len(blocks)),
	}
	util.Debug("run %s: %d blocks", util.ShortID(run.ID), len(blocks))

	state := initial
	var errs []error
	for i, b := range blocks {
		res := internal.BlockResult{Index: i, Start: b.Start, End: b.End, Roles: b.EnabledRoles()}

		a, err := s.assignBlock(i, b, state)
		if err != nil {
			berr := &internal.BlockError{Index: i, Start: b.Start, End: b.End, Err: err}
			res.Err = berr
			run.Results = append(run.Results, res)
			errs = append(errs, berr)
			if !s.keepGoing {
				run.Final = state
				run.Stats = s.stats
				return run, berr
			}
			util.Warn("%v; continuing without rotation memory", berr)
			state = rotation.Advance(state, nil)
			continue
		}

		res.Assignment = a
		run.Results = append(run.Results, res)
		state = rotation.Advance(state, a)
		util.Info("block %d (%s - %s): %d people assigned", i+1, b.Start, b.End, a.Total())
	}

	run.Final = state
	run.Stats = s.stats
	return run, errors.Join(errs...)
}

func (s *Scheduler) assignBlock(i int, b internal.Block, state rotation.State) (internal.Assignment, error) {
	if len(b.People) == 0 {
		return nil, internal.ErrNoPeople
	}
	// builder errors surface before any search runs
	units, err := slots.ForBlock(b)
	if err != nil {
		return nil, err
	}

	before := s.stats
	a, err := s.solver.Assign(b.People, units, state)
	util.L().Debug("search",
		zap.Int("block", i+1),
		zap.Int("units", len(units)),
		zap.Int("nodes", s.stats.Nodes-before.Nodes),
		zap.Int("backtracks", s.stats.Backtracks-before.Backtracks),
		zap.Bool("ok", err == nil))
	if err != nil {
		return nil, err
	}
	return a, nil
}
