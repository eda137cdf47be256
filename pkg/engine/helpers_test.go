package engine_test

import (
	"testing"

	"github.com/aretw0/stategate/pkg/dsl"
	"github.com/aretw0/stategate/pkg/engine"
	"github.com/stretchr/testify/require"
)

// accountScript is the pending/active/suspended/archived lifecycle used across tests.
func accountScript() dsl.Script {
	b := dsl.New()
	b.State("pending").Human("Pending Activation").To("active")
	b.State("active").To("suspended", "archived")
	b.State("suspended").Human("Suspended by Admin").To("active", "archived")
	b.State("archived")
	b.Default("pending")
	return b.Script()
}

func mustBuild(t *testing.T, script dsl.Script) *engine.Graph {
	t.Helper()
	g, err := engine.Build("EngineTest", "status", script)
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

func plainStates(ids ...string) *dsl.Builder {
	b := dsl.New()
	for _, id := range ids {
		b.State(id)
	}
	return b
}
