package propspec

import "fmt"

// StateKind identifies the category of dynamical quantity a propagation
// block integrates.
type StateKind int

const (
	// KindHybrid groups several blocks of different kinds. It is structural:
	// it may appear as the shape of a whole configuration (more than one
	// block) but never as the kind of a single block.
	KindHybrid StateKind = iota
	// KindTranslational propagates Cartesian position and velocity.
	KindTranslational
	// KindRotational propagates orientation (quaternion) and angular rates.
	KindRotational
	// KindMass propagates body mass.
	KindMass
	// KindCustom is a recognized tag with no resolvable payload here.
	KindCustom
)

// kindTags maps kinds to their canonical configuration tags.
var kindTags = map[StateKind]string{
	KindHybrid:        "hybrid",
	KindTranslational: "translational",
	KindRotational:    "rotational",
	KindMass:          "mass",
	KindCustom:        "custom",
}

// unsupportedKinds flags kinds that cannot be decoded as a standalone block:
// hybrid is structural, custom carries no payload this resolver understands.
var unsupportedKinds = map[StateKind]bool{
	KindHybrid: true,
	KindCustom: true,
}

// stateSizes gives the per-body state vector size for each concrete kind.
// Rotational is 7: a 4-component quaternion plus 3 angular rates.
var stateSizes = map[StateKind]int{
	KindTranslational: 6,
	KindRotational:    7,
	KindMass:          1,
}

// stateKeys gives the per-body configuration key holding a tree-declared
// state of each concrete kind.
var stateKeys = map[StateKind]string{
	KindTranslational: "initialState",
	KindRotational:    "rotationalState",
	KindMass:          "mass",
}

// UnknownTagError reports a state-kind tag string with no registered mapping.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown state kind tag %q", e.Tag)
}

// Tag returns the canonical configuration tag for a kind.
func (k StateKind) Tag() string {
	tag, ok := kindTags[k]
	if !ok {
		return fmt.Sprintf("StateKind(%d)", int(k))
	}
	return tag
}

func (k StateKind) String() string { return k.Tag() }

// KindFromTag resolves a configuration tag to its kind. Fails with
// *UnknownTagError when the tag has no registered mapping.
func KindFromTag(tag string) (StateKind, error) {
	for kind, t := range kindTags {
		if t == tag {
			return kind, nil
		}
	}
	return 0, &UnknownTagError{Tag: tag}
}

// Supported reports whether this resolver can decode the kind as a
// standalone block.
func (k StateKind) Supported() bool {
	_, registered := kindTags[k]
	return registered && !unsupportedKinds[k]
}

// StateSize returns the per-body state vector size, or 0 for kinds that have
// no standalone state.
func (k StateKind) StateSize() int {
	return stateSizes[k]
}

// StateKey returns the per-body configuration key for a tree-declared state
// of this kind, or "" for kinds without one.
func (k StateKind) StateKey() string {
	return stateKeys[k]
}
