package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shiftrota/internal/roles"
	"shiftrota/internal/scheduler"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Text writes one paragraph per block:
//
//	 12:00 PM - 1:00 PM
//	Machine: Ana
//	Lanes: Ben
type Text struct {
	Color bool
}

func (t *Text) Render(w io.Writer, run *scheduler.Run) error {
	var sb strings.Builder
	for _, res := range run.Results {
		sb.WriteString(t.style(headerStyle, fmt.Sprintf(" %s - %s ", res.Start, res.End)))
		sb.WriteString("\n")
		if res.Err != nil {
			sb.WriteString(t.style(errorStyle, "error: "+cause(res.Err)))
			sb.WriteString("\n\n")
			continue
		}
		for _, k := range roles.OutputOrder() {
			names := res.Assignment[k]
			if !res.Roles.Has(k) && len(names) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "%s: %s\n", roles.LabelFor(k, res.Roles), strings.Join(names, ", "))
		}
		sb.WriteString("\n")
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		out = "(empty)"
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(out + "\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func (t *Text) style(s lipgloss.Style, text string) string {
	if !t.Color {
		return text
	}
	return s.Render(text)
}
