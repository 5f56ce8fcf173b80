package codec

import (
	"fmt"

	"github.com/SpaceArchitect/tudat/internal/bodies"
	"github.com/SpaceArchitect/tudat/internal/propspec"
	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// ResolveInitialStates fills in the initialStates entry of every propagator
// block in the tree that lacks one. Blocks that already declare initial
// states are left untouched.
//
// With exactly one translational block, resolution first attempts to derive
// the states from the registry's ephemerides at initialEpoch. That attempt is
// best-effort: any failure (absent body, no ephemeris coverage, central-body
// mismatch) falls through to the tree-declared body states below, not to the
// caller. Every other failure propagates.
func ResolveInitialStates(tree proptree.Object, reg *bodies.Registry, initialEpoch float64) error {
	props, err := tree.ListAt(KeyPropagators)
	if err != nil {
		return err
	}

	if len(props) == 1 {
		block, err := blockObject(props, 0)
		if err != nil {
			return err
		}
		if !block.HasPath(KeyInitialStates) {
			kind, err := blockKind(block)
			if err != nil {
				return err
			}
			if kind == propspec.KindTranslational {
				if states, ok := ephemerisStates(block, reg, initialEpoch); ok {
					return block.Set(KeyInitialStates, proptree.Numbers(states...))
				}
			}
		}
	}

	for i := range props {
		block, err := blockObject(props, i)
		if err != nil {
			return err
		}
		if block.HasPath(KeyInitialStates) {
			continue
		}
		if err := fillFromTree(tree, block, fmt.Sprintf("%s.%d", KeyPropagators, i)); err != nil {
			return err
		}
	}
	return nil
}

// ephemerisStates attempts ephemeris-based resolution for one translational
// block. The boolean result signals whether the attempt succeeded; a false
// result carries no error because the caller falls through to the
// tree-declared path.
func ephemerisStates(block proptree.Object, reg *bodies.Registry, epoch float64) ([]float64, bool) {
	if reg == nil {
		return nil, false
	}
	propagated, err := block.StringsAt(KeyBodiesToPropagate)
	if err != nil {
		return nil, false
	}
	centrals, err := block.StringsAt(KeyCentralBodies)
	if err != nil {
		return nil, false
	}
	states, err := bodies.InitialStatesOf(propagated, centrals, reg, epoch)
	if err != nil {
		return nil, false
	}
	return states, true
}

// fillFromTree builds a block's initial-state vector body by body from the
// per-body state keys of the tree.
func fillFromTree(tree, block proptree.Object, blockPath string) error {
	kind, err := blockKind(block)
	if err != nil {
		return err
	}
	size := kind.StateSize()
	if size == 0 {
		if kind == propspec.KindHybrid {
			return &InvalidNestingError{Path: blockPath}
		}
		return &UnsupportedStateTypeError{Tag: kind.Tag()}
	}

	propagated, err := block.StringsAt(KeyBodiesToPropagate)
	if err != nil {
		return err
	}

	// Translational states are declared relative to each body's central
	// body; the pairing must be complete before any state is read.
	if kind == propspec.KindTranslational {
		centrals, err := block.StringsAt(KeyCentralBodies)
		if err != nil {
			return err
		}
		if len(centrals) != len(propagated) {
			return fmt.Errorf("%s: %d central bodies for %d propagated bodies",
				blockPath, len(centrals), len(propagated))
		}
	}

	states := make([]float64, size*len(propagated))
	for i, body := range propagated {
		path := proptree.Join(KeyBodies, body, kind.StateKey())
		vec, err := stateVectorAt(tree, path)
		if err != nil {
			return &MissingStateSourceError{Body: body, Path: path, Err: err}
		}
		if len(vec) != size {
			return fmt.Errorf("key %q: state has %d components, want %d for %s",
				path, len(vec), size, kind)
		}
		copy(states[i*size:], vec)
	}
	return block.Set(KeyInitialStates, proptree.Numbers(states...))
}

// stateVectorAt reads a state as a vector, accepting a bare number for
// one-dimensional states such as mass.
func stateVectorAt(tree proptree.Object, path string) ([]float64, error) {
	n, err := tree.At(path)
	if err != nil {
		return nil, err
	}
	if f, ok := n.(proptree.Number); ok {
		return []float64{float64(f)}, nil
	}
	return tree.FloatsAt(path)
}

// blockObject extracts the i-th propagator entry as an object.
func blockObject(props proptree.List, i int) (proptree.Object, error) {
	obj, ok := props[i].(proptree.Object)
	if !ok {
		return nil, &proptree.KeyError{
			Path:    fmt.Sprintf("%s.%d", KeyPropagators, i),
			Message: fmt.Sprintf("expected object, found %T", props[i]),
		}
	}
	return obj, nil
}

// blockKind reads a block's state kind, defaulting to translational when the
// tag is absent.
func blockKind(block proptree.Object) (propspec.StateKind, error) {
	tag, err := block.StringAtOr(KeyIntegratedStateType, propspec.KindTranslational.Tag())
	if err != nil {
		return 0, err
	}
	return propspec.KindFromTag(tag)
}
