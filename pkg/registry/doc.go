// Package registry maps (entity, attribute) pairs to their state graphs.
//
// A Registry is owned by the composition root of the host application and
// passed to whatever needs to gate writes; it is never global. Each pair is
// built at most once and the resulting graph is shared by every reader.
package registry
