package engine_test

import (
	"slices"
	"testing"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/dsl"
	"github.com/aretw0/stategate/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraphInvariants checks the properties every successfully built graph must hold.
func TestGraphInvariants(t *testing.T) {
	anyScript := func() dsl.Script {
		b := dsl.New()
		b.State("open").ToAny()
		b.State("closed").To("open")
		b.State("merged")
		b.Default("open")
		return b.Script()
	}

	scripts := map[string]dsl.Script{
		"Account":          accountScript(),
		"Transitionless":   plainStates("a", "b", "c").Script(),
		"Sequential":       plainStates("a", "b", "c", "d").MakeSequential().Script(),
		"Sequential Loop":  plainStates("a", "b", "c", "d").MakeSequential(domain.FlagLoop).Script(),
		"One Way Loop":     plainStates("a", "b", "c").MakeSequential(domain.FlagOneWay, domain.FlagLoop).Script(),
		"Any":              anyScript(),
		"Affixes And Last": plainStates("x", "y").Default("y").Prefix("p").Suffix("s").Script(),
	}

	for name, script := range scripts {
		t.Run(name, func(t *testing.T) {
			g, err := engine.Build("Prop", "state", script)
			require.NoError(t, err)

			states := g.States()
			assert.GreaterOrEqual(t, len(states), 2)
			assert.Contains(t, states, g.DefaultState())

			inbound := map[string]bool{}
			for _, s := range states {
				targets, err := g.TransitionsForState(s)
				require.NoError(t, err)

				seen := map[string]bool{}
				for _, target := range targets {
					assert.Contains(t, states, target)
					assert.False(t, seen[target], "duplicate target %s on %s", target, s)
					seen[target] = true
					if target != s {
						inbound[target] = true
					}
				}

				assert.NoError(t, g.AssertValidTransition(s, s))
				for _, other := range states {
					assert.NoError(t, g.AssertValidTransition(s, domain.ForcePrefix+other))
				}
			}

			for _, s := range states {
				if s != g.DefaultState() {
					assert.True(t, inbound[s], "state %s is unreachable", s)
				}
			}
		})
	}
}

func TestAnyExpansion_EqualsAllOtherStates(t *testing.T) {
	b := dsl.New()
	b.State("open").ToAny()
	b.State("closed").To("open")
	b.State("merged")

	g := mustBuild(t, b.Script())

	got, err := g.TransitionsForState("open")
	require.NoError(t, err)
	want := slices.DeleteFunc(g.States(), func(s string) bool { return s == "open" })
	assert.Equal(t, want, got)
	assert.False(t, g.IsTransitionless())
}
