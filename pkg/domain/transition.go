package domain

import "strings"

// Transition is a proposed move of a gated attribute to Target.
// A forced transition skips authorization but Target must still be a declared state.
type Transition struct {
	Target string `json:"target"`
	Forced bool   `json:"forced,omitempty"`
}

// To returns an unforced transition to target.
func To(target string) Transition {
	return Transition{Target: target}
}

// Force returns a forced transition to target.
func Force(target string) Transition {
	return Transition{Target: target, Forced: true}
}

// ParseTransition converts the string convention used at the host boundary
// ("force_active") into the tagged form.
func ParseTransition(value string) Transition {
	if IsForced(value) {
		return Transition{Target: value[len(ForcePrefix):], Forced: true}
	}
	return Transition{Target: value}
}

// String renders the transition back into its string convention.
func (t Transition) String() string {
	if t.Forced {
		return ForcePrefix + t.Target
	}
	return t.Target
}

// IsForced reports whether value carries the force marker (case-insensitive).
func IsForced(value string) bool {
	return len(value) >= len(ForcePrefix) && strings.EqualFold(value[:len(ForcePrefix)], ForcePrefix)
}

// Unforce strips the force marker from value, if present.
func Unforce(value string) string {
	if IsForced(value) {
		return value[len(ForcePrefix):]
	}
	return value
}
