/*
Package stategate guards a string attribute of a host entity with a declared
state graph.

A gate is configured once per (entity, attribute) pair from an ordered script
of commands. The engine checks the script for consistency and produces an
immutable graph that answers every later question: which states exist, what
their display labels are, and whether a proposed change of value is allowed.

# Concept

Hosts keep storing a plain string. Every write goes through the graph:

  - a move to the same state is always allowed;
  - a move to a forced value ("force_archived") skips the transition rules,
    but the target must still be a declared state;
  - anything else must be listed among the transitions of the current state.

Graphs that declare no transitions at all are transitionless: every state may
follow every other, and hosts only check that values are declared states.

# Usage

	eng := stategate.New()

	b := dsl.New()
	b.State("pending").Human("Pending Activation").To("active")
	b.State("active").To("suspended", "archived")
	b.State("suspended").To("active", "archived")
	b.State("archived")

	if _, err := eng.Define("User", "status", b.Script()); err != nil {
		log.Fatal(err)
	}

	status, _ := eng.Value("User", "status")
	if err := status.Set("active"); err != nil {
		log.Fatal(err)
	}

Gates can also be loaded from YAML or JSON documents with Engine.LoadFile, and
served over HTTP (pkg/adapters/http) or MCP (pkg/adapters/mcp).
*/
package stategate
