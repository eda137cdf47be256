package dsl

import (
	"testing"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_RecordsCommandsInOrder(t *testing.T) {
	b := New()

	b.State("pending").
		Human("Pending Activation").
		To("active")

	b.State("active").
		To("suspended").
		To("archived")

	b.State("archived").ToAny()

	b.Default("pending").
		Prefix("account").
		Suffix("state").
		MakeSequential(domain.FlagOneWay, domain.FlagLoop).
		NoScopes()

	script := b.Script()
	require.Len(t, script, 8)

	names := make([]string, len(script))
	for i, c := range script {
		names[i] = c.Name()
	}
	assert.Equal(t, []string{
		CmdState, CmdState, CmdState,
		CmdDefault, CmdPrefix, CmdSuffix, CmdMakeSequential, CmdNoScopes,
	}, names)

	assert.Equal(t, State{ID: "pending", Human: "Pending Activation", TransitionsTo: []string{"active"}}, script[0])
	assert.Equal(t, State{ID: "active", TransitionsTo: []string{"suspended", "archived"}}, script[1])
	assert.Equal(t, State{ID: "archived", TransitionsTo: []string{domain.AnyState}}, script[2])
	assert.Equal(t, MakeSequential{Flags: []string{"one_way", "loop"}}, script[6])
}

func TestBuilder_ScriptIsACopy(t *testing.T) {
	b := New()
	sb := b.State("a").To("b")

	first := sb.Script()
	sb.To("c")
	second := b.Script()

	assert.Equal(t, []string{"b"}, first[0].(State).TransitionsTo)
	assert.Equal(t, []string{"b", "c"}, second[0].(State).TransitionsTo)
}

func TestUnknown_Name(t *testing.T) {
	var c Command = Unknown{Token: "dummy"}
	assert.Equal(t, "dummy", c.Name())
}
