// Package render turns a scheduler run into something to hand to people:
// the shift text that gets pasted into a group chat, or structured yaml/json.
package render

import (
	"fmt"
	"io"
	"sort"

	"shiftrota/internal"
	"shiftrota/internal/roles"
	"shiftrota/internal/scheduler"
)

type Renderer interface {
	Render(w io.Writer, run *scheduler.Run) error
}

type Options struct {
	// Color styles block headers and errors for a terminal.
	Color bool
}

// Formats lists the names accepted by New.
func Formats() []string {
	return []string{"text", "yaml", "json"}
}

func New(format string, opts Options) (Renderer, error) {
	switch format {
	case "", "text":
		return &Text{Color: opts.Color}, nil
	case "yaml":
		return &YAML{}, nil
	case "json":
		return &JSON{Indent: "  "}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %v)", format, Formats())
}

type blockView struct {
	Block      int                     `yaml:"block" json:"block"`
	Start      string                  `yaml:"start" json:"start"`
	End        string                  `yaml:"end" json:"end"`
	Roles      []roles.Kind            `yaml:"roles" json:"roles"`
	Assignment map[roles.Kind][]string `yaml:"assignment,omitempty" json:"assignment,omitempty"`
	Error      string                  `yaml:"error,omitempty" json:"error,omitempty"`
}

type runView struct {
	ID     string      `yaml:"id" json:"id"`
	Status string      `yaml:"status" json:"status"`
	Seed   *uint64     `yaml:"seed,omitempty" json:"seed,omitempty"`
	Blocks []blockView `yaml:"blocks" json:"blocks"`
}

func view(run *scheduler.Run) runView {
	v := runView{ID: run.ID, Status: "success", Seed: run.Seed}
	for _, res := range run.Results {
		bv := blockView{
			Block: res.Index + 1,
			Start: res.Start,
			End:   res.End,
			Roles: res.Roles.Enabled(),
		}
		if res.Err != nil {
			v.Status = "fail"
			bv.Error = cause(res.Err)
		} else {
			bv.Assignment = sortedCopy(res.Assignment)
		}
		v.Blocks = append(v.Blocks, bv)
	}
	return v
}

// cause drops the block prefix, which the views already carry as fields.
func cause(err error) string {
	if be, ok := err.(*internal.BlockError); ok {
		return be.Err.Error()
	}
	return err.Error()
}

// sortedCopy keeps the names of overflow roles in a stable order so
// structured output diffs cleanly between runs.
func sortedCopy(a internal.Assignment) map[roles.Kind][]string {
	out := make(map[roles.Kind][]string, len(a))
	for k, names := range a {
		cp := append([]string(nil), names...)
		sort.Strings(cp)
		out[k] = cp
	}
	return out
}
