/*
Package domain contains the core domain models of the stategate engine.

It defines the fundamental entities of a gated attribute: the declared States, the
tagged Transition value presented at the host boundary, and the error taxonomy shared
by the builder, the graph and every adapter. This package is kept pure and free of
I/O, following Hexagonal Architecture principles.

# Key Entities

  - State: A named node of the graph (ID, human label, allowed targets, scope name).
  - Transition: A proposed move to a target state, optionally forced.
  - ConfigurationError: A script that cannot produce a consistent graph.
  - InvalidStateError / InvalidTransitionError: Runtime rejections of a host write.
*/
package domain
