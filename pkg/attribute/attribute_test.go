package attribute_test

import (
	"testing"

	"github.com/aretw0/stategate/pkg/attribute"
	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/dsl"
	"github.com/aretw0/stategate/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountGraph(t *testing.T) *engine.Graph {
	t.Helper()
	b := dsl.New()
	b.State("pending").Human("Pending Activation").To("active")
	b.State("active").To("suspended", "archived")
	b.State("suspended").To("active", "archived")
	b.State("archived")
	g, err := engine.Build("User", "status", b.Script())
	require.NoError(t, err)
	return g
}

func transitionlessGraph(t *testing.T) *engine.Graph {
	t.Helper()
	b := dsl.New()
	b.State("red")
	b.State("green")
	b.State("blue")
	g, err := engine.Build("Light", "colour", b.Script())
	require.NoError(t, err)
	return g
}

func TestNew_StartsAtDefault(t *testing.T) {
	v := attribute.New(accountGraph(t))
	assert.Equal(t, "pending", v.Get())
	assert.Equal(t, "Pending Activation", v.Human())
	assert.Equal(t, []string{"active"}, v.Transitions())
	assert.True(t, v.Is("PENDING"))
	assert.True(t, v.IsNot("active"))
}

func TestInit(t *testing.T) {
	g := accountGraph(t)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "empty uses default", value: "", want: "pending"},
		{name: "forced value", value: "force_archived", want: "archived"},
		{name: "forced value any case", value: "FORCE_Active", want: "active"},
		{name: "unforced value", value: "active", wantErr: attribute.ErrUnforcedInitialValue},
		{name: "unknown forced value", value: "force_dummy", wantErr: domain.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := attribute.Init(g, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Get())
		})
	}
}

func TestValue_Set(t *testing.T) {
	v := attribute.New(accountGraph(t))

	require.NoError(t, v.Set("active"))
	assert.Equal(t, "active", v.Get())

	err := v.Set("pending")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.EqualError(t, err, "User#status cannot transition from :active to :pending")
	assert.Equal(t, "active", v.Get())

	require.NoError(t, v.Set("active"), "self transition is always allowed")

	require.NoError(t, v.Set("force_pending"))
	assert.Equal(t, "pending", v.Get(), "force marker is never stored")

	assert.ErrorIs(t, v.Set("dummy"), domain.ErrInvalidState)
	assert.ErrorIs(t, v.Set("force_dummy"), domain.ErrInvalidState)
	assert.Equal(t, "pending", v.Get())
}

func TestValue_Apply(t *testing.T) {
	v := attribute.New(accountGraph(t))

	assert.ErrorIs(t, v.Apply(domain.To("archived")), domain.ErrInvalidTransition)
	require.NoError(t, v.Apply(domain.Force("archived")))
	assert.Equal(t, "archived", v.Get())
	assert.Empty(t, v.Transitions())
}

func TestValue_CanTransitionTo(t *testing.T) {
	v := attribute.New(accountGraph(t))
	assert.True(t, v.CanTransitionTo("active"))
	assert.False(t, v.CanTransitionTo("archived"))
	assert.True(t, v.CanTransitionTo("force_archived"))
	assert.False(t, v.CanTransitionTo("dummy"))
}

func TestValue_TransitionlessSkipsEnforcement(t *testing.T) {
	g := transitionlessGraph(t)
	require.True(t, g.IsTransitionless())

	v := attribute.New(g)
	assert.Equal(t, "red", v.Get())
	require.NoError(t, v.Set("blue"))
	require.NoError(t, v.Set("green"))
	assert.True(t, v.CanTransitionTo("red"))
	assert.ErrorIs(t, v.Set("purple"), domain.ErrInvalidState)
}

func TestInit_Transitionless(t *testing.T) {
	g := transitionlessGraph(t)

	v, err := attribute.Init(g, "green")
	require.NoError(t, err)
	assert.Equal(t, "green", v.Get())

	v, err = attribute.Init(g, "force_Blue")
	require.NoError(t, err)
	assert.Equal(t, "blue", v.Get())

	_, err = attribute.Init(g, "purple")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.NotErrorIs(t, err, attribute.ErrUnforcedInitialValue)
}

func TestCodec(t *testing.T) {
	g := accountGraph(t)

	got, err := attribute.Cast(g, "Force_Active")
	require.NoError(t, err)
	assert.Equal(t, "active", got)

	got, err = attribute.Serialize(g, "ARCHIVED")
	require.NoError(t, err)
	assert.Equal(t, "archived", got)

	_, err = attribute.Serialize(g, "dummy")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	got, err = attribute.Deserialize(g, "")
	require.NoError(t, err)
	assert.Equal(t, "pending", got)

	got, err = attribute.Deserialize(g, "suspended")
	require.NoError(t, err)
	assert.Equal(t, "suspended", got)
}
