package dsl

import "github.com/aretw0/stategate/pkg/domain"

// Builder records configuration commands in the order they are issued.
// It performs no validation: the engine checks the script as a whole.
type Builder struct {
	commands []Command
}

// New creates a new script builder.
func New() *Builder {
	return &Builder{}
}

// State declares a new state and returns a builder for its options.
func (b *Builder) State(id string) *StateBuilder {
	b.commands = append(b.commands, State{ID: id})
	return &StateBuilder{builder: b, index: len(b.commands) - 1}
}

// Default sets the default state.
func (b *Builder) Default(id string) *Builder {
	b.commands = append(b.commands, Default{ID: id})
	return b
}

// Prefix sets the scope-name prefix.
func (b *Builder) Prefix(affix string) *Builder {
	b.commands = append(b.commands, Prefix{Affix: affix})
	return b
}

// Suffix sets the scope-name suffix.
func (b *Builder) Suffix(affix string) *Builder {
	b.commands = append(b.commands, Suffix{Affix: affix})
	return b
}

// MakeSequential links every state to its declaration-order neighbors.
// Recognized flags are domain.FlagOneWay and domain.FlagLoop.
func (b *Builder) MakeSequential(flags ...string) *Builder {
	b.commands = append(b.commands, MakeSequential{Flags: append([]string(nil), flags...)})
	return b
}

// NoScopes disables scope helpers.
func (b *Builder) NoScopes() *Builder {
	b.commands = append(b.commands, NoScopes{})
	return b
}

// Script returns a copy of the recorded commands.
func (b *Builder) Script() Script {
	out := make(Script, len(b.commands))
	for i, c := range b.commands {
		if s, ok := c.(State); ok {
			s.TransitionsTo = append([]string(nil), s.TransitionsTo...)
			c = s
		}
		out[i] = c
	}
	return out
}

// StateBuilder provides a fluent API for configuring a declared state.
type StateBuilder struct {
	builder *Builder
	index   int
}

func (s *StateBuilder) update(fn func(*State)) *StateBuilder {
	st := s.builder.commands[s.index].(State)
	fn(&st)
	s.builder.commands[s.index] = st
	return s
}

// Human sets the display label of the state.
func (s *StateBuilder) Human(label string) *StateBuilder {
	return s.update(func(st *State) { st.Human = label })
}

// To adds allowed targets to the state.
func (s *StateBuilder) To(targets ...string) *StateBuilder {
	return s.update(func(st *State) { st.TransitionsTo = append(st.TransitionsTo, targets...) })
}

// ToAny allows the state to move to every other declared state.
func (s *StateBuilder) ToAny() *StateBuilder {
	return s.To(domain.AnyState)
}

// Builder returns the parent builder, to continue with global commands.
func (s *StateBuilder) Builder() *Builder {
	return s.builder
}

// Script is a shortcut for Builder().Script().
func (s *StateBuilder) Script() Script {
	return s.builder.Script()
}
