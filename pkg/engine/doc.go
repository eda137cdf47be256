// Package engine builds and queries stategate graphs.
//
// Build runs a dsl.Script through a fixed pipeline (execute commands, derive
// sequential links and scope names, de-duplicate, then assert consistency) and
// returns an immutable *Graph. The graph answers every read-side query a host
// needs and authorizes proposed transitions through AssertValidTransition.
package engine
