package scheduler

import (
	"os"
	"shiftrota/internal"
	"shiftrota/internal/rotation"
	"shiftrota/internal/solver"
	"time"

	"gopkg.in/yaml.v3"
)

// Run is the outcome of one pass over a session.
type Run struct {
	ID      string
	Seed    *uint64
	Started time.Time
	Results []internal.BlockResult
	Final   rotation.State
	Stats   solver.Stats
}

// Failures lists the block errors in block order.
func (r *Run) Failures() []*internal.BlockError {
	var out []*internal.BlockError
	for _, res := range r.Results {
		if be, ok := res.Err.(*internal.BlockError); ok {
			out = append(out, be)
		}
	}
	return out
}

func (r *Run) OK() bool { return len(r.Failures()) == 0 }

type Failure struct {
	Block int    `yaml:"block"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Error string `yaml:"error"`
}

// Summary is what goes into run.yaml.
type Summary struct {
	ID        string         `yaml:"id"`
	Status    string         `yaml:"status"`
	Timestamp string         `yaml:"timestamp"`
	Seed      *uint64        `yaml:"seed,omitempty"`
	Blocks    int            `yaml:"blocks"`
	Assigned  int            `yaml:"assigned"`
	Failures  []Failure      `yaml:"failures,omitempty"`
	Search    solver.Stats   `yaml:"search"`
	Final     rotation.State `yaml:"final_state"`
}

func (r *Run) Summary() Summary {
	sum := Summary{
		ID:        r.ID,
		Status:    "success",
		Timestamp: r.Started.Format(time.RFC3339),
		Seed:      r.Seed,
		Blocks:    len(r.Results),
		Search:    r.Stats,
		Final:     r.Final,
	}
	for _, res := range r.Results {
		if res.Err == nil {
			sum.Assigned++
		}
	}
	for _, f := range r.Failures() {
		sum.Status = "fail"
		sum.Failures = append(sum.Failures, Failure{
			Block: f.Index + 1,
			Start: f.Start,
			End:   f.End,
			Error: f.Err.Error(),
		})
	}
	return sum
}

// WriteSummary saves the summary as yaml at path.
func (r *Run) WriteSummary(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(f)
	if err := enc.Encode(r.Summary()); err != nil {
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
