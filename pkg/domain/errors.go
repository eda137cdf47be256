package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration error kinds. A *ConfigurationError unwraps to exactly one of them.
var (
	ErrInvalidType      = errors.New("invalid identifier")
	ErrDuplicateState   = errors.New("duplicate state")
	ErrReservedName     = errors.New("reserved state name")
	ErrRepeatedSetting  = errors.New("repeated setting")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnknownOption    = errors.New("unknown option")
	ErrTooFewStates     = errors.New("too few states")
	ErrUnknownDefault   = errors.New("unknown default state")
	ErrMixedAny         = errors.New("any mixed with explicit transitions")
	ErrUnknownTarget    = errors.New("unknown transition target")
	ErrUnreachableState = errors.New("unreachable state")
)

// Runtime error kinds.
var (
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotSequential     = errors.New("gate is not sequential")
)

// Subject renders the "Entity#attribute" pair used in every message.
func Subject(entity, attribute string) string {
	return entity + "#" + attribute
}

// ConfigurationError reports a script that cannot produce a consistent graph.
type ConfigurationError struct {
	Entity    string
	Attribute string
	Kind      error

	// Setting names the command or option at fault ("state", "default", "prefix", ...).
	Setting string
	// State is the offending state, when one is involved.
	State string
	// Value is the offending raw value (a target, a command name, a reserved marker).
	Value string
	// States lists every state involved, e.g. all unreachable states.
	States []string
}

func (e *ConfigurationError) Error() string {
	subject := Subject(e.Entity, e.Attribute)
	switch e.Kind {
	case ErrInvalidType:
		if e.State != "" {
			return fmt.Sprintf("%s for %s:%s must be identifiers (got %q)", e.Setting, subject, e.State, e.Value)
		}
		return fmt.Sprintf("%s for %s must be an identifier without whitespace (got %q)", e.Setting, subject, e.Value)
	case ErrDuplicateState:
		return fmt.Sprintf("%s:%s has been defined multiple times", subject, e.State)
	case ErrReservedName:
		return fmt.Sprintf("%s:%s states cannot begin with '%s'", subject, e.State, e.Value)
	case ErrRepeatedSetting:
		return fmt.Sprintf("%s for %s has been specified multiple times", e.Setting, subject)
	case ErrUnknownCommand:
		return fmt.Sprintf("'%s' is not a valid configuration option for %s", e.Value, subject)
	case ErrUnknownOption:
		if e.State != "" {
			return fmt.Sprintf("'%s' is not a valid %s option for %s:%s", e.Value, e.Setting, subject, e.State)
		}
		return fmt.Sprintf("'%s' is not a valid %s option for %s", e.Value, e.Setting, subject)
	case ErrTooFewStates:
		if len(e.States) == 0 {
			return fmt.Sprintf("no states have been defined for %s", subject)
		}
		return fmt.Sprintf("%s must define more than one state", subject)
	case ErrUnknownDefault:
		return fmt.Sprintf("default state :%s for %s is not a defined state", e.State, subject)
	case ErrMixedAny:
		return fmt.Sprintf("when transitioning to :%s on %s:%s, :%s must be the only transition", AnyState, subject, e.State, AnyState)
	case ErrUnknownTarget:
		return fmt.Sprintf("%s transitions from :%s to invalid state :%s", subject, e.State, e.Value)
	case ErrUnreachableState:
		return fmt.Sprintf("there are no state transitions leading to %s %s", subject, sentence(e.States))
	}
	return fmt.Sprintf("invalid configuration for %s: %v", subject, e.Kind)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Kind
}

// InvalidStateError reports a value that is not a declared state.
type InvalidStateError struct {
	Entity    string
	Attribute string
	Value     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%q is not a valid state for %s", e.Value, Subject(e.Entity, e.Attribute))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidTransitionError reports a move outside the authorized set.
type InvalidTransitionError struct {
	Entity    string
	Attribute string
	From      string
	To        string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot transition from :%s to :%s", Subject(e.Entity, e.Attribute), e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// sentence joins states as ":a, :b and :c".
func sentence(states []string) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = ":" + s
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
