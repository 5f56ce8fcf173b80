// Package bodies provides the read-only body registry and ephemeris lookup
// used to infer missing initial states.
//
// The registry is an in-memory map from body name to a queryable ephemeris;
// it can be built directly or loaded from a SQLite ephemeris store. All
// lookups are pure in-memory queries, safe for concurrent read-only access.
package bodies
