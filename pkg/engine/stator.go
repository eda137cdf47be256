package engine

import (
	"sort"

	"github.com/aretw0/stategate/pkg/domain"
)

// SelectOption is a (label, value) pair ready for a form select.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// States returns the declared state ids in declaration order.
func (g *Graph) States() []string {
	return append([]string(nil), g.order...)
}

// HumanStates returns the display labels, parallel to States.
func (g *Graph) HumanStates() []string {
	out := make([]string, len(g.order))
	for i, id := range g.order {
		out[i] = g.states[id].Human
	}
	return out
}

// HumanStateFor returns the display label of a state.
func (g *Graph) HumanStateFor(value string) (string, error) {
	s, err := g.lookup(value)
	if err != nil {
		return "", err
	}
	return s.Human, nil
}

// StatesForSelect returns (label, id) pairs in declaration order, or ordered
// by label when sorted is true.
func (g *Graph) StatesForSelect(sorted bool) []SelectOption {
	out := make([]SelectOption, len(g.order))
	for i, id := range g.order {
		out[i] = SelectOption{Label: g.states[id].Human, Value: id}
	}
	if sorted {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	}
	return out
}

// State returns a copy of the full record of a state.
func (g *Graph) State(value string) (domain.State, error) {
	s, err := g.lookup(value)
	if err != nil {
		return domain.State{}, err
	}
	return s.Clone(), nil
}

// DefaultState returns the state assigned to new entities.
func (g *Graph) DefaultState() string {
	return g.defaultState
}

// AssertValidState normalizes value and checks it names a declared state.
// A force_ marker is accepted and kept in the returned value.
func (g *Graph) AssertValidState(value string) (string, error) {
	name, ok := domain.Normalize(value)
	if !ok {
		return "", g.invalidState(value)
	}
	if _, exists := g.states[domain.Unforce(name)]; !exists {
		return "", g.invalidState(value)
	}
	return name, nil
}

// IsValidState reports whether value names a declared state.
func (g *Graph) IsValidState(value string) bool {
	_, err := g.AssertValidState(value)
	return err == nil
}

func (g *Graph) lookup(value string) (*domain.State, error) {
	name, err := g.AssertValidState(value)
	if err != nil {
		return nil, err
	}
	return g.states[domain.Unforce(name)], nil
}

func (g *Graph) invalidState(value string) error {
	return &domain.InvalidStateError{Entity: g.entity, Attribute: g.attribute, Value: value}
}
