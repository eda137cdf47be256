package engine

// IncludeScopes reports whether the host should expose per-state lookup helpers.
func (g *Graph) IncludeScopes() bool {
	return g.scopes
}

// ScopeNameForState returns prefix + id + suffix for a declared state.
func (g *Graph) ScopeNameForState(value string) (string, error) {
	s, err := g.lookup(value)
	if err != nil {
		return "", err
	}
	return s.ScopeName, nil
}

// StatePrefix returns the configured prefix including its separator, or "".
func (g *Graph) StatePrefix() string {
	return g.prefix
}

// StateSuffix returns the configured suffix including its separator, or "".
func (g *Graph) StateSuffix() string {
	return g.suffix
}
