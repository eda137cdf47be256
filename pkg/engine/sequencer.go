package engine

// generateSequences links every state to its declaration-order neighbors.
// Forward links are always added, backward links unless one_way, and the
// wrap-around links only with loop.
func (c *configurator) generateSequences() {
	g := c.graph
	if !g.sequential || len(g.order) == 0 {
		return
	}

	if !g.oneWay {
		for i := 1; i < len(g.order); i++ {
			s := g.states[g.order[i]]
			s.PreviousState = g.order[i-1]
			s.TransitionsTo = append(s.TransitionsTo, s.PreviousState)
		}
	}

	for i := 0; i < len(g.order)-1; i++ {
		s := g.states[g.order[i]]
		s.NextState = g.order[i+1]
		s.TransitionsTo = append(s.TransitionsTo, s.NextState)
	}

	if !g.loop {
		return
	}

	first, last := g.order[0], g.order[len(g.order)-1]
	g.states[last].NextState = first
	g.states[last].TransitionsTo = append(g.states[last].TransitionsTo, first)

	if g.oneWay {
		return
	}
	g.states[first].PreviousState = last
	g.states[first].TransitionsTo = append(g.states[first].TransitionsTo, last)
}
