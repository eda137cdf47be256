package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/stategate/internal/logging"
	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/dsl"
	"github.com/aretw0/stategate/pkg/engine"
)

var (
	// ErrAlreadyDefined is returned when a gate exists for the entity/attribute pair.
	ErrAlreadyDefined = errors.New("gate already defined")
	// ErrNotFound is returned when no gate exists for the entity/attribute pair.
	ErrNotFound = errors.New("gate not found")
)

// Key identifies one gated attribute of one host entity type.
type Key struct {
	Entity    string `json:"entity"`
	Attribute string `json:"attribute"`
}

func (k Key) String() string {
	return domain.Subject(k.Entity, k.Attribute)
}

// Definition pairs a key with the script that builds its graph.
type Definition struct {
	Key
	Script dsl.Script
}

// Observer is notified every time a gate is defined.
type Observer interface {
	GateDefined(key Key, g *engine.Graph)
}

// Registry holds exactly one graph per (entity, attribute) pair.
// Graphs are immutable; the registry only guards its own map.
type Registry struct {
	mu        sync.RWMutex
	gates     map[Key]*engine.Graph
	logger    *slog.Logger
	observers []Observer
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver registers an observer for defined gates.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observers = append(r.observers, o)
	}
}

// New creates a new empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		gates:  make(map[Key]*engine.Graph),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Define builds the graph for entity/attribute and registers it.
// Nothing is registered when the build fails.
func (r *Registry) Define(entity, attribute string, script dsl.Script) (*engine.Graph, error) {
	if err := r.Load(Definition{Key: Key{Entity: entity, Attribute: attribute}, Script: script}); err != nil {
		return nil, err
	}
	g, _ := r.Lookup(entity, attribute)
	return g, nil
}

// Load builds and registers every definition, all or nothing.
func (r *Registry) Load(defs ...Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	built := make(map[Key]*engine.Graph, len(defs))
	for _, def := range defs {
		if _, exists := r.gates[def.Key]; exists {
			return fmt.Errorf("%s: %w", def.Key, ErrAlreadyDefined)
		}
		if _, exists := built[def.Key]; exists {
			return fmt.Errorf("%s: %w", def.Key, ErrAlreadyDefined)
		}

		g, err := engine.Build(def.Entity, def.Attribute, def.Script, engine.WithLogger(r.logger))
		if err != nil {
			r.logger.Error("gate definition rejected", "entity", def.Entity, "attribute", def.Attribute, "error", err)
			return err
		}
		built[def.Key] = g
	}

	for _, def := range defs {
		g := built[def.Key]
		r.gates[def.Key] = g
		r.logger.Info("gate defined", "entity", def.Entity, "attribute", def.Attribute, "states", len(g.States()))
		for _, o := range r.observers {
			o.GateDefined(def.Key, g)
		}
	}
	return nil
}

// Lookup returns the graph for entity/attribute.
func (r *Registry) Lookup(entity, attribute string) (*engine.Graph, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.gates[Key{Entity: entity, Attribute: attribute}]
	return g, ok
}

// Get is Lookup returning ErrNotFound for unknown pairs.
func (r *Registry) Get(entity, attribute string) (*engine.Graph, error) {
	g, ok := r.Lookup(entity, attribute)
	if !ok {
		return nil, fmt.Errorf("%s: %w", domain.Subject(entity, attribute), ErrNotFound)
	}
	return g, nil
}

// Keys returns every registered key, sorted by entity then attribute.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.gates))
	for k := range r.gates {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Entity != keys[j].Entity {
			return keys[i].Entity < keys[j].Entity
		}
		return keys[i].Attribute < keys[j].Attribute
	})
	return keys
}

// Attributes returns the gated attributes of an entity type, sorted.
func (r *Registry) Attributes(entity string) []string {
	var out []string
	for _, k := range r.Keys() {
		if k.Entity == entity {
			out = append(out, k.Attribute)
		}
	}
	return out
}

// Len returns the number of registered gates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.gates)
}
