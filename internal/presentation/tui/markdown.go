package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/stategate/pkg/engine"
)

// DescribeMarkdown renders a gate description as a markdown document.
func DescribeMarkdown(d engine.Description) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s#%s\n\n", d.Entity, d.Attribute))

	var flags []string
	if d.Transitionless {
		flags = append(flags, "transitionless")
	}
	if d.Sequential {
		seq := "sequential"
		if d.OneWay {
			seq += ", one way"
		}
		if d.Loop {
			seq += ", looping"
		}
		flags = append(flags, seq)
	}
	sb.WriteString(fmt.Sprintf("Default state: `%s`\n\n", d.Default))
	if len(flags) > 0 {
		sb.WriteString(fmt.Sprintf("Mode: %s\n\n", strings.Join(flags, "; ")))
	}

	sb.WriteString("| State | Label | Transitions to | Scope |\n")
	sb.WriteString("|---|---|---|---|\n")
	for i, id := range d.States {
		targets := "-"
		if ts := d.Transitions[id]; len(ts) > 0 {
			targets = strings.Join(ts, ", ")
		}
		scope := "-"
		if name, ok := d.Scopes[id]; ok {
			scope = "`" + name + "`"
		}
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s |\n", id, d.HumanStates[i], targets, scope))
	}
	return sb.String()
}
