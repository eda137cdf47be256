package engine

import (
	"log/slog"

	"github.com/aretw0/stategate/internal/logging"
	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/dsl"
)

// Graph is the validated, immutable state graph of one gated attribute.
// It is safe for concurrent use: nothing mutates it after Build returns.
type Graph struct {
	entity    string
	attribute string

	order  []string
	states map[string]*domain.State

	defaultState string
	prefix       string
	suffix       string

	scopes         bool
	sequential     bool
	loop           bool
	oneWay         bool
	transitionless bool
}

// Option configures a Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger *slog.Logger
}

// WithLogger sets the structured logger used while building.
func WithLogger(logger *slog.Logger) Option {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Build executes script for the given entity/attribute pair and returns the frozen graph.
// On failure it returns a *domain.ConfigurationError and no graph.
func Build(entity, attribute string, script dsl.Script, opts ...Option) (*Graph, error) {
	o := buildOptions{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	c := newConfigurator(entity, attribute)
	if err := c.exec(script); err != nil {
		return nil, err
	}

	c.generateSequences()
	c.generateScopeNames()
	c.uniqTransitions()

	assertions := []func() error{
		c.assertStatesAreValid,
		c.assertTransitionsExist,
		c.assertAnyHasBeenExpanded,
		c.assertAllTransitionsAreStates,
		c.assertAllStatesAreReachable,
	}
	for _, assert := range assertions {
		if err := assert(); err != nil {
			return nil, err
		}
	}

	g := c.graph
	o.logger.Debug("state graph built",
		"entity", g.entity,
		"attribute", g.attribute,
		"states", len(g.order),
		"default", g.defaultState,
		"sequential", g.sequential,
		"transitionless", g.transitionless,
	)
	return g, nil
}

// Entity returns the host entity type the graph gates.
func (g *Graph) Entity() string { return g.entity }

// Attribute returns the gated attribute name.
func (g *Graph) Attribute() string { return g.attribute }

// String renders the graph subject as "Entity#attribute".
func (g *Graph) String() string { return domain.Subject(g.entity, g.attribute) }
