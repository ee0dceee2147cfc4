package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"shiftrota/internal/scheduler"
)

type YAML struct{}

func (YAML) Render(w io.Writer, run *scheduler.Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view(run)); err != nil {
		return err
	}
	return enc.Close()
}

type JSON struct {
	Indent string
}

func (j JSON) Render(w io.Writer, run *scheduler.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	return enc.Encode(view(run))
}
