package attribute

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/engine"
)

// ErrUnforcedInitialValue is returned when a new entity is given an explicit
// state without the force_ marker.
var ErrUnforcedInitialValue = errors.New("initial state must be forced")

// Value is a gated attribute of one entity. Writes go through the graph.
type Value struct {
	mu      sync.Mutex
	graph   *engine.Graph
	current string
}

// New returns a value holding the default state of g.
func New(g *engine.Graph) *Value {
	return &Value{graph: g, current: g.DefaultState()}
}

// Init returns a value for a new entity starting in an explicit state.
// The state must be forced ("force_active") unless g is transitionless;
// an empty value starts at the default.
func Init(g *engine.Graph, value string) (*Value, error) {
	if value == "" {
		return New(g), nil
	}
	if !g.IsTransitionless() && !domain.IsForced(value) {
		return nil, fmt.Errorf("%s: %q: %w", g, value, ErrUnforcedInitialValue)
	}
	id, err := Cast(g, value)
	if err != nil {
		return nil, err
	}
	return &Value{graph: g, current: id}, nil
}

// Graph returns the graph gating the value.
func (v *Value) Graph() *engine.Graph {
	return v.graph
}

// Get returns the current state id.
func (v *Value) Get() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set moves the value to input, which may carry the force_ marker.
// Transitionless graphs only check that input names a state.
func (v *Value) Set(input string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.graph.IsTransitionless() {
		if _, err := v.graph.AssertValidState(input); err != nil {
			return err
		}
	} else if err := v.graph.AssertValidTransition(v.current, input); err != nil {
		return err
	}

	id, err := Cast(v.graph, input)
	if err != nil {
		return err
	}
	v.current = id
	return nil
}

// Apply is Set for the tagged transition form.
func (v *Value) Apply(t domain.Transition) error {
	return v.Set(t.String())
}

// CanTransitionTo reports whether Set(q) would succeed.
func (v *Value) CanTransitionTo(q string) bool {
	current := v.Get()
	if v.graph.IsTransitionless() {
		return v.graph.IsValidState(q)
	}
	return v.graph.CanTransition(current, q)
}

// Transitions returns the targets allowed from the current state.
func (v *Value) Transitions() []string {
	ts, _ := v.graph.TransitionsForState(v.Get())
	return ts
}

// Human returns the display label of the current state.
func (v *Value) Human() string {
	h, _ := v.graph.HumanStateFor(v.Get())
	return h
}

// Is reports whether the current state is id.
func (v *Value) Is(id string) bool {
	name, ok := domain.Normalize(id)
	return ok && name == v.Get()
}

// IsNot is the negation of Is.
func (v *Value) IsNot(id string) bool {
	return !v.Is(id)
}

func (v *Value) String() string {
	return v.Get()
}
