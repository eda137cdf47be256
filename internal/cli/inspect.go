package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/stategate/internal/presentation/graph"
	"github.com/aretw0/stategate/internal/presentation/tui"
	"github.com/aretw0/stategate/pkg/engine"
)

// InspectOptions are shared by the read-only commands.
type InspectOptions struct {
	Path        string
	Debug       bool
	JSON        bool
	Interactive bool
}

func (o InspectOptions) logger() *slog.Logger {
	return createLogger(slog.LevelInfo, o.Debug, true)
}

// RunValidate loads a definition document and reports every gate.
// It returns the configuration error of the first invalid gate.
func RunValidate(w io.Writer, opts InspectOptions) error {
	status := tui.NewStatus(w)
	eng, err := createEngine(opts.Path, opts.logger(), nil)
	if err != nil {
		status.Fail("%v", err)
		return err
	}
	for _, k := range eng.Registry().Keys() {
		g, _ := eng.Gate(k.Entity, k.Attribute)
		status.Pass("%s (%d states)", k, len(g.States()))
	}
	return nil
}

// RunDescribe prints one gate, or every gate when entity is empty.
func RunDescribe(w io.Writer, opts InspectOptions, entity, attribute string) error {
	eng, err := createEngine(opts.Path, opts.logger(), nil)
	if err != nil {
		return err
	}

	var graphs []*engine.Graph
	if entity != "" {
		g, err := eng.Gate(entity, attribute)
		if err != nil {
			return err
		}
		graphs = append(graphs, g)
	} else {
		for _, k := range eng.Registry().Keys() {
			g, _ := eng.Gate(k.Entity, k.Attribute)
			graphs = append(graphs, g)
		}
	}

	if opts.JSON {
		descriptions := make([]engine.Description, len(graphs))
		for i, g := range graphs {
			descriptions[i] = g.Describe()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(descriptions)
	}

	render := tui.NewRenderer(opts.Interactive)
	for _, g := range graphs {
		out, err := render(tui.DescribeMarkdown(g.Describe()))
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", g, err)
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

// RunGraph prints the Mermaid diagram of a gate, highlighting current if set.
func RunGraph(w io.Writer, opts InspectOptions, entity, attribute, current string) error {
	eng, err := createEngine(opts.Path, opts.logger(), nil)
	if err != nil {
		return err
	}
	g, err := eng.Gate(entity, attribute)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if current != "" {
		if !g.IsValidState(current) {
			_, err := g.AssertValidState(current)
			return err
		}
		overlay = &graph.GraphOverlay{CurrentState: current}
	}
	fmt.Fprint(w, graph.GenerateMermaid(g, overlay))
	return nil
}

// RunCheck authorizes a single transition and reports the outcome.
func RunCheck(w io.Writer, opts InspectOptions, entity, attribute, from, to string) error {
	eng, err := createEngine(opts.Path, opts.logger(), nil)
	if err != nil {
		return err
	}

	status := tui.NewStatus(w)
	if err := eng.Authorize(entity, attribute, from, to); err != nil {
		status.Fail("%v", err)
		return err
	}
	status.Pass("%s#%s may transition from :%s to :%s", entity, attribute, from, to)
	return nil
}
