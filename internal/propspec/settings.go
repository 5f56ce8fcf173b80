package propspec

// MultiType owns the complete decoded propagation configuration: the ordered
// propagation blocks, one termination condition (possibly synthesized from
// the final epoch), the declared export targets, the deduplicated list of
// variables to save, and an optional console print interval.
type MultiType struct {
	// Blocks holds one entry per dynamical sub-problem, in declaration
	// order. A configuration with more than one block is what "hybrid"
	// propagation means; no block is ever itself hybrid.
	Blocks []Block
	// Termination stops the propagation. Never nil after decoding.
	Termination Termination
	// Export holds the declared export targets, in declaration order.
	Export []ExportSet
	// SaveVariables is the identity-deduplicated union of all export-target
	// variables, first occurrence order preserved.
	SaveVariables []Variable
	// PrintInterval is the console progress interval in seconds. Nil means
	// the configuration did not set one and the default applies; it is
	// never encoded back in that case.
	PrintInterval *float64
}

// BlocksOfKind returns the blocks of one kind in declaration order.
func (m *MultiType) BlocksOfKind(kind StateKind) []Block {
	var out []Block
	for _, b := range m.Blocks {
		if b.Kind() == kind {
			out = append(out, b)
		}
	}
	return out
}
