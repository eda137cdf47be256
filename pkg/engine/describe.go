package engine

// Description is a serializable snapshot of a graph, used by the adapters.
type Description struct {
	Entity         string              `json:"entity" yaml:"entity"`
	Attribute      string              `json:"attribute" yaml:"attribute"`
	Default        string              `json:"default" yaml:"default"`
	States         []string            `json:"states" yaml:"states"`
	HumanStates    []string            `json:"human_states" yaml:"human_states"`
	Transitions    map[string][]string `json:"transitions" yaml:"transitions"`
	Transitionless bool                `json:"transitionless" yaml:"transitionless"`
	Sequential     bool                `json:"sequential" yaml:"sequential"`
	Loop           bool                `json:"loop,omitempty" yaml:"loop,omitempty"`
	OneWay         bool                `json:"one_way,omitempty" yaml:"one_way,omitempty"`
	Prefix         string              `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix         string              `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Scopes         map[string]string   `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// Describe returns a snapshot of the graph.
func (g *Graph) Describe() Description {
	d := Description{
		Entity:         g.entity,
		Attribute:      g.attribute,
		Default:        g.defaultState,
		States:         g.States(),
		HumanStates:    g.HumanStates(),
		Transitions:    g.Transitions(),
		Transitionless: g.transitionless,
		Sequential:     g.sequential,
		Loop:           g.loop,
		OneWay:         g.oneWay,
		Prefix:         g.prefix,
		Suffix:         g.suffix,
	}
	if g.scopes {
		d.Scopes = make(map[string]string, len(g.order))
		for _, id := range g.order {
			d.Scopes[id] = g.states[id].ScopeName
		}
	}
	return d
}
