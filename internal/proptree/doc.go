// Package proptree provides the key-addressable configuration tree that the
// settings codec consumes and produces.
//
// This package contains the tree value types, path-based accessors, the
// YAML/CUE loaders that build trees from parsed input, and a canonical
// serializer for deterministic output. It imports nothing internal; every
// other internal package may import proptree.
//
// Key design constraints:
//   - Numbers are float64 throughout (state vectors and epochs are physical
//     quantities)
//   - Every accessor failure carries the full dotted key path
//   - Canonical serialization sorts object keys by UTF-16 code units and
//     NFC-normalizes strings
package proptree
