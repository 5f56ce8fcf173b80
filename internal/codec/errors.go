package codec

import "fmt"

// UnsupportedStateTypeError reports a recognized state kind that cannot be
// decoded as a standalone propagation block.
type UnsupportedStateTypeError struct {
	Tag string
}

func (e *UnsupportedStateTypeError) Error() string {
	return fmt.Sprintf("state kind %q is not supported as a standalone propagation block", e.Tag)
}

// InvalidNestingError reports a hybrid kind supplied where a concrete block
// was expected. Hybrid propagation is expressed by listing more than one
// propagator, never by a hybrid block.
type InvalidNestingError struct {
	Path string
}

func (e *InvalidNestingError) Error() string {
	return fmt.Sprintf("%s: hybrid propagation is expressed by listing several propagators and cannot be nested as a block", e.Path)
}

// MissingStateSourceError reports a body whose initial state could be found
// neither through the ephemeris nor at its configuration key.
type MissingStateSourceError struct {
	Body string
	Path string
	Err  error
}

func (e *MissingStateSourceError) Error() string {
	return fmt.Sprintf("no initial state for body %q: key %q absent and ephemeris unavailable", e.Body, e.Path)
}

func (e *MissingStateSourceError) Unwrap() error { return e.Err }
