package propspec

import (
	"golang.org/x/text/unicode/norm"
)

// Variable identifies one derived quantity to be recorded during
// propagation.
type Variable struct {
	// Quantity names the derived quantity, e.g. "altitude" or
	// "relativeSpeed".
	Quantity string
	// Body is the body the quantity belongs to.
	Body string
	// RelativeBody qualifies quantities computed with respect to a second
	// body. Empty when not applicable.
	RelativeBody string
}

// ID returns the semantic identity string used for deduplication. Two
// variables with the same NFC-normalized quantity, body, and relative body
// are the same variable regardless of where they were declared.
func (v Variable) ID() string {
	id := norm.NFC.String(v.Quantity) + "@" + norm.NFC.String(v.Body)
	if v.RelativeBody != "" {
		id += "/" + norm.NFC.String(v.RelativeBody)
	}
	return id
}

// ExportSet declares one output target and the variables recorded into it.
type ExportSet struct {
	// File is the output path the integration subsystem writes to.
	File string
	// Variables lists the recorded quantities in declaration order.
	Variables []Variable
	// Header controls whether a descriptive header row is written.
	Header bool
	// EpochsInFirstColumn controls whether the independent variable is
	// prepended to each output row.
	EpochsInFirstColumn bool
}
