package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/engine"
)

// GraphOverlay highlights a state of the diagram.
type GraphOverlay struct {
	CurrentState string
}

// GenerateMermaid produces a Mermaid stateDiagram-v2 for a gate.
// It applies semantic styling:
// - the default state is entered from [*]
// - states with a custom human label are declared with that label
// - sequential links are labelled next/previous
// - transitionless gates get a note instead of every edge
func GenerateMermaid(g *engine.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    %%%% %s\n", g))

	states := g.States()
	humans := g.HumanStates()
	for i, id := range states {
		sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", escapeLabel(humans[i]), sanitizeMermaidID(id)))
	}

	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(g.DefaultState())))

	if g.IsTransitionless() {
		sb.WriteString(fmt.Sprintf("    note right of %s : transitionless, any state may follow any other\n", sanitizeMermaidID(g.DefaultState())))
	} else {
		transitions := g.Transitions()
		for _, id := range states {
			next, previous := sequenceLinks(g, id)
			for _, target := range transitions[id] {
				arrow := fmt.Sprintf("    %s --> %s", sanitizeMermaidID(id), sanitizeMermaidID(target))
				switch target {
				case next:
					arrow += " : next"
				case previous:
					arrow += " : previous"
				}
				sb.WriteString(arrow + "\n")
			}
		}
	}

	if overlay != nil && overlay.CurrentState != "" {
		if name, err := g.AssertValidState(overlay.CurrentState); err == nil {
			sb.WriteString("\n    %% Overlay Styles\n")
			sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")
			sb.WriteString(fmt.Sprintf("    class %s current\n", sanitizeMermaidID(domain.Unforce(name))))
		}
	}

	return sb.String()
}

func sequenceLinks(g *engine.Graph, id string) (next, previous string) {
	if !g.IsSequential() {
		return "", ""
	}
	next, _ = g.NextState(id)
	previous, _ = g.PreviousState(id)
	return next, previous
}

func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
