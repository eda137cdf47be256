/*
Package dsl provides a Go DSL for programmatically writing stategate configuration scripts.

A Script is the ordered list of commands (state, default, prefix, suffix,
make_sequential, no_scopes) that the engine turns into a validated Graph. The fluent
builder records commands exactly as issued; consistency checks are the engine's job.

Example usage:

	package main

	import (
		"github.com/aretw0/stategate/pkg/dsl"
		"github.com/aretw0/stategate/pkg/engine"
	)

	func main() {
		b := dsl.New()

		b.State("pending").Human("Pending Activation").To("active")
		b.State("active").To("suspended", "archived")
		b.State("suspended").To("active", "archived")
		b.State("archived")

		b.Default("pending").Prefix("account")

		graph, err := engine.Build("User", "status", b.Script())
		// ...
	}
*/
package dsl
