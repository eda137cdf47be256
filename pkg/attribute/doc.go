// Package attribute is the host-side boundary of a gate: a guarded value that
// can only change through an authorized transition, plus the cast and storage
// conversions hosts apply when reading and writing the attribute.
package attribute
