package engine_test

import (
	"testing"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeNameForState(t *testing.T) {
	g := mustBuild(t, plainStates("pending", "active", "suspended", "archived").
		Prefix("My_Prefix").
		Suffix("my_suffix").
		Script())

	assert.True(t, g.IncludeScopes())
	assert.Equal(t, "my_prefix_", g.StatePrefix())
	assert.Equal(t, "_my_suffix", g.StateSuffix())

	for _, id := range g.States() {
		name, err := g.ScopeNameForState(id)
		require.NoError(t, err)
		assert.Equal(t, "my_prefix_"+id+"_my_suffix", name)
	}

	_, err := g.ScopeNameForState("dummy")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestScopeNameForState_NoAffixes(t *testing.T) {
	g := mustBuild(t, plainStates("pending", "active").NoScopes().Script())

	assert.False(t, g.IncludeScopes())
	assert.Empty(t, g.StatePrefix())
	assert.Empty(t, g.StateSuffix())

	name, err := g.ScopeNameForState("active")
	require.NoError(t, err)
	assert.Equal(t, "active", name)
}
