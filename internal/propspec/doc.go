// Package propspec defines the typed propagation-settings object graph that
// the codec produces from a configuration tree and re-serializes back into
// one.
//
// The closed set of propagated-state kinds is modelled as a sealed Block
// variant with one payload shape per kind; termination predicates are a
// sealed Termination variant. Model-selection maps (accelerations, torques,
// mass-rate models) are kept opaque as proptree objects and round-tripped
// verbatim.
//
// Values in this package are plain data handed to the integration subsystem
// by value; nothing here retains shared mutable state after construction.
package propspec
