// Package codec maps between the configuration tree and the typed
// propagation-settings object graph.
//
// Decode reads the tree's propagator list, fills in missing initial states
// (from the body registry's ephemerides when possible, from tree-declared
// body states otherwise), assembles the termination condition from the
// declared conditions and the final epoch, and deduplicates the export
// variables. Encode runs the same mapping in reverse.
//
// The codec is a pure, stateless mapping: it holds no state between calls
// and mutates only the caller-supplied tree (initial-state resolution writes
// the inferred vectors back into it).
package codec
