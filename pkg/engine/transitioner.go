package engine

import (
	"fmt"
	"slices"

	"github.com/aretw0/stategate/pkg/domain"
)

// IsTransitionless reports whether no transitions were declared, in which case
// every state may reach every other state and hosts skip enforcement.
func (g *Graph) IsTransitionless() bool {
	return g.transitionless
}

// Transitions returns every state's allowed targets.
func (g *Graph) Transitions() map[string][]string {
	out := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		out[id] = append([]string(nil), g.states[id].TransitionsTo...)
	}
	return out
}

// TransitionsForState returns the allowed targets of a state, in order.
func (g *Graph) TransitionsForState(value string) ([]string, error) {
	s, err := g.lookup(value)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), s.TransitionsTo...), nil
}

// AssertValidTransition authorizes a move from one state to another.
//
// Both values must name declared states. A move to the same state is always
// allowed, as is a move to a forced value (force_<state>). Anything else must
// be listed in the transitions of from.
func (g *Graph) AssertValidTransition(from, to string) error {
	fromName, err := g.AssertValidState(from)
	if err != nil {
		return err
	}
	toName, err := g.AssertValidState(to)
	if err != nil {
		return err
	}

	fromID := domain.Unforce(fromName)
	if domain.Unforce(toName) == fromID {
		return nil
	}
	if domain.IsForced(toName) {
		return nil
	}
	if slices.Contains(g.states[fromID].TransitionsTo, toName) {
		return nil
	}
	return &domain.InvalidTransitionError{
		Entity:    g.entity,
		Attribute: g.attribute,
		From:      fromName,
		To:        toName,
	}
}

// Authorize is AssertValidTransition for the tagged transition form.
func (g *Graph) Authorize(from string, t domain.Transition) error {
	return g.AssertValidTransition(from, t.String())
}

// CanTransition reports whether AssertValidTransition would succeed.
func (g *Graph) CanTransition(from, to string) bool {
	return g.AssertValidTransition(from, to) == nil
}

// IsSequential reports whether make_sequential was configured.
func (g *Graph) IsSequential() bool { return g.sequential }

// SequentialLoop reports whether the sequence wraps around.
func (g *Graph) SequentialLoop() bool { return g.loop }

// SequentialOneWay reports whether backward links were suppressed.
func (g *Graph) SequentialOneWay() bool { return g.oneWay }

// NextState returns the sequential successor of a state ("" for the last state
// of a non-looping sequence).
func (g *Graph) NextState(value string) (string, error) {
	s, err := g.sequenced(value)
	if err != nil {
		return "", err
	}
	return s.NextState, nil
}

// PreviousState returns the sequential predecessor of a state.
func (g *Graph) PreviousState(value string) (string, error) {
	s, err := g.sequenced(value)
	if err != nil {
		return "", err
	}
	return s.PreviousState, nil
}

func (g *Graph) sequenced(value string) (*domain.State, error) {
	if !g.sequential {
		return nil, fmt.Errorf("%s: %w", g, domain.ErrNotSequential)
	}
	return g.lookup(value)
}
