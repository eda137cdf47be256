package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State is a named node of a gate graph.
type State struct {
	ID    string `json:"id" yaml:"id"`
	Human string `json:"human" yaml:"human"`

	// TransitionsTo lists the states this state may move to, in declaration order.
	TransitionsTo []string `json:"transitions_to" yaml:"transitions_to"`

	// PreviousState and NextState are only populated on sequential graphs.
	PreviousState string `json:"previous_state,omitempty" yaml:"previous_state,omitempty"`
	NextState     string `json:"next_state,omitempty" yaml:"next_state,omitempty"`

	// ScopeName is the affix-decorated name used for lookup helpers.
	ScopeName string `json:"scope_name" yaml:"scope_name"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.TransitionsTo = append([]string(nil), s.TransitionsTo...)
	return c
}

// Normalize converts a raw identifier into its canonical form.
// It reports false for blank values and values containing whitespace.
func Normalize(value string) (string, bool) {
	if value == "" || strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return "", false
	}
	return strings.ToLower(value), true
}

// Humanize renders an identifier as a display label:
// "pending_activation" becomes "Pending Activation".
func Humanize(id string) string {
	words := strings.Fields(strings.ReplaceAll(id, "_", " "))
	return cases.Title(language.English).String(strings.Join(words, " "))
}
