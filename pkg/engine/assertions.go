package engine

import "github.com/aretw0/stategate/pkg/domain"

// assertStatesAreValid requires at least two states and resolves the default state.
func (c *configurator) assertStatesAreValid() error {
	g := c.graph
	if len(g.order) < 2 {
		return c.fail(domain.ErrTooFewStates, domain.ConfigurationError{States: append([]string(nil), g.order...)})
	}

	if !c.defaultSet {
		g.defaultState = g.order[0]
		return nil
	}
	if _, ok := g.states[g.defaultState]; !ok {
		return c.fail(domain.ErrUnknownDefault, domain.ConfigurationError{Setting: "default", State: g.defaultState})
	}
	return nil
}

// assertTransitionsExist flags the graph as transitionless when no state
// declares a transition, letting every state reach every other state.
func (c *configurator) assertTransitionsExist() error {
	g := c.graph
	for _, id := range g.order {
		if len(g.states[id].TransitionsTo) > 0 {
			return nil
		}
	}

	g.transitionless = true
	for _, id := range g.order {
		g.states[id].TransitionsTo = c.others(id)
	}
	return nil
}

// assertAnyHasBeenExpanded replaces a lone "any" with every other state.
func (c *configurator) assertAnyHasBeenExpanded() error {
	g := c.graph
	for _, id := range g.order {
		s := g.states[id]
		if len(s.TransitionsTo) == 1 && s.TransitionsTo[0] == domain.AnyState {
			s.TransitionsTo = c.others(id)
			continue
		}
		for _, target := range s.TransitionsTo {
			if target == domain.AnyState {
				return c.fail(domain.ErrMixedAny, domain.ConfigurationError{Setting: "transitions", State: id})
			}
		}
	}
	return nil
}

func (c *configurator) assertAllTransitionsAreStates() error {
	g := c.graph
	for _, id := range g.order {
		for _, target := range g.states[id].TransitionsTo {
			if _, ok := g.states[target]; !ok {
				return c.fail(domain.ErrUnknownTarget, domain.ConfigurationError{Setting: "transitions", State: id, Value: target})
			}
		}
	}
	return nil
}

// assertAllStatesAreReachable requires an inbound transition from another
// state for every state except the default.
func (c *configurator) assertAllStatesAreReachable() error {
	g := c.graph
	reached := make(map[string]bool, len(g.order))
	for _, id := range g.order {
		for _, target := range g.states[id].TransitionsTo {
			if target != id {
				reached[target] = true
			}
		}
	}

	var adrift []string
	for _, id := range g.order {
		if id != g.defaultState && !reached[id] {
			adrift = append(adrift, id)
		}
	}
	if len(adrift) == 0 {
		return nil
	}
	return c.fail(domain.ErrUnreachableState, domain.ConfigurationError{States: adrift})
}
