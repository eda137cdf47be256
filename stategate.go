package stategate

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/stategate/internal/logging"
	"github.com/aretw0/stategate/pkg/adapters/file"
	"github.com/aretw0/stategate/pkg/attribute"
	"github.com/aretw0/stategate/pkg/dsl"
	"github.com/aretw0/stategate/pkg/engine"
	"github.com/aretw0/stategate/pkg/observability"
	"github.com/aretw0/stategate/pkg/registry"
)

// Version is the released version of stategate.
//
//go:embed VERSION
var Version string

// Engine is the high-level entry point for the stategate library.
// It owns a registry of gates and, optionally, the metrics recording their use.
type Engine struct {
	gates   *registry.Registry
	metrics *observability.Metrics
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used by the engine and its registry.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records gate definitions and authorizations.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New creates an Engine with an empty registry.
func New(opts ...Option) *Engine {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	regOpts := []registry.Option{registry.WithLogger(e.logger)}
	if e.metrics != nil {
		regOpts = append(regOpts, registry.WithObserver(e.metrics))
	}
	e.gates = registry.New(regOpts...)
	return e
}

// Define builds and registers the gate for entity/attribute.
func (e *Engine) Define(entity, attribute string, script dsl.Script) (*engine.Graph, error) {
	return e.gates.Define(entity, attribute, script)
}

// LoadFile registers every gate of a definition document, all or nothing.
func (e *Engine) LoadFile(path string) error {
	defs, err := file.Load(path)
	if err != nil {
		return err
	}
	if err := e.gates.Load(defs...); err != nil {
		return err
	}
	e.logger.Info("definitions loaded", "path", path, "gates", len(defs))
	return nil
}

// Gate returns the graph for entity/attribute.
func (e *Engine) Gate(entity, attribute string) (*engine.Graph, error) {
	return e.gates.Get(entity, attribute)
}

// Value returns a new gated value for entity/attribute, at its default state.
func (e *Engine) Value(entity, attr string) (*attribute.Value, error) {
	g, err := e.gates.Get(entity, attr)
	if err != nil {
		return nil, err
	}
	return attribute.New(g), nil
}

// Authorize checks a transition of entity/attribute, recording it when
// metrics are enabled.
func (e *Engine) Authorize(entity, attribute, from, to string) error {
	g, err := e.gates.Get(entity, attribute)
	if err != nil {
		return err
	}
	if e.metrics != nil {
		return e.metrics.Authorize(g, from, to)
	}
	return g.AssertValidTransition(from, to)
}

// Registry exposes the underlying registry for adapters.
func (e *Engine) Registry() *registry.Registry {
	return e.gates
}

// Metrics returns the metrics, or nil when disabled.
func (e *Engine) Metrics() *observability.Metrics {
	return e.metrics
}
