package propspec

import (
	"fmt"

	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// BlockCore holds the fields shared by every propagation block: the bodies
// being propagated and the concatenated initial-state vector. Once resolved,
// len(InitialState) == Kind().StateSize() * len(BodiesToPropagate).
type BlockCore struct {
	BodiesToPropagate []string
	InitialState      []float64
}

// Bodies returns the names of the propagated bodies in declaration order.
func (c *BlockCore) Bodies() []string { return c.BodiesToPropagate }

// State returns the concatenated initial-state vector. Empty until resolved.
func (c *BlockCore) State() []float64 { return c.InitialState }

// Block is a sealed interface over the closed set of per-kind propagation
// blocks. Only TranslationalBlock, RotationalBlock, and MassBlock implement
// it; hybrid is expressed by a configuration holding more than one block,
// never as a block itself.
type Block interface {
	block() // Sealed - only these types implement it
	Kind() StateKind
	Bodies() []string
	State() []float64
}

// TranslationalPropagatorType selects the formulation used for translational
// dynamics.
type TranslationalPropagatorType string

const (
	Cowell                   TranslationalPropagatorType = "cowell"
	Encke                    TranslationalPropagatorType = "encke"
	GaussKeplerian           TranslationalPropagatorType = "gaussKeplerian"
	GaussModifiedEquinoctial TranslationalPropagatorType = "gaussModifiedEquinoctial"
)

// translationalPropagatorTypes is the closed set of accepted formulations.
var translationalPropagatorTypes = map[TranslationalPropagatorType]bool{
	Cowell:                   true,
	Encke:                    true,
	GaussKeplerian:           true,
	GaussModifiedEquinoctial: true,
}

// TranslationalPropagatorFromTag resolves a formulation tag. Fails with
// *UnknownTagError for unregistered tags.
func TranslationalPropagatorFromTag(tag string) (TranslationalPropagatorType, error) {
	t := TranslationalPropagatorType(tag)
	if !translationalPropagatorTypes[t] {
		return "", &UnknownTagError{Tag: tag}
	}
	return t, nil
}

// TranslationalBlock propagates Cartesian states of one or more bodies, each
// relative to a central body, under a selected set of accelerations.
type TranslationalBlock struct {
	BlockCore
	// CentralBodies pairs with BodiesToPropagate by index.
	CentralBodies []string
	// Accelerations is the opaque model-selection map, keyed by undergoing
	// body then exerting body. Round-tripped verbatim.
	Accelerations proptree.Object
	// PropagatorType defaults to Cowell when the configuration omits it.
	PropagatorType TranslationalPropagatorType
}

func (*TranslationalBlock) block()          {}
func (*TranslationalBlock) Kind() StateKind { return KindTranslational }

// RotationalBlock propagates body orientations under a selected set of
// torques.
type RotationalBlock struct {
	BlockCore
	// Torques is the opaque model-selection map. Round-tripped verbatim.
	Torques proptree.Object
}

func (*RotationalBlock) block()          {}
func (*RotationalBlock) Kind() StateKind { return KindRotational }

// MassBlock propagates body masses under a selected set of mass-rate models.
type MassBlock struct {
	BlockCore
	// MassRateModels is the opaque model-selection map. Round-tripped
	// verbatim.
	MassRateModels proptree.Object
}

func (*MassBlock) block()          {}
func (*MassBlock) Kind() StateKind { return KindMass }

// ValidateState checks the initial-state invariant for a resolved block.
func ValidateState(b Block) error {
	want := b.Kind().StateSize() * len(b.Bodies())
	if len(b.State()) == 0 {
		return fmt.Errorf("%s block for %v: initial state is empty", b.Kind(), b.Bodies())
	}
	if len(b.State()) != want {
		return fmt.Errorf("%s block for %v: initial state has %d components, want %d",
			b.Kind(), b.Bodies(), len(b.State()), want)
	}
	return nil
}
