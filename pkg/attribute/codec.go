package attribute

import (
	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/engine"
)

// Cast converts a host value into a state id: lower-cased, without the
// force_ marker, and checked against the graph.
func Cast(g *engine.Graph, value string) (string, error) {
	name, err := g.AssertValidState(value)
	if err != nil {
		return "", err
	}
	return domain.Unforce(name), nil
}

// Serialize converts a value for storage. It is Cast under the storage name.
func Serialize(g *engine.Graph, value string) (string, error) {
	return Cast(g, value)
}

// Deserialize converts a stored value back into a state id.
// An empty stored value yields the default state.
func Deserialize(g *engine.Graph, stored string) (string, error) {
	if stored == "" {
		return g.DefaultState(), nil
	}
	return Cast(g, stored)
}
