package codec

import (
	"fmt"

	"github.com/SpaceArchitect/tudat/internal/bodies"
	"github.com/SpaceArchitect/tudat/internal/propspec"
	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// Decode resolves a configuration tree into the typed propagation settings.
//
// Missing initial states are filled in first (mutating the tree, see
// ResolveInitialStates); reg may be nil when no ephemeris source is
// available, in which case only tree-declared states can be used.
// initialEpoch is the integrator's start epoch supplied by the caller.
func Decode(tree proptree.Object, reg *bodies.Registry, initialEpoch float64) (*propspec.MultiType, error) {
	if err := ResolveInitialStates(tree, reg, initialEpoch); err != nil {
		return nil, err
	}

	props, err := tree.ListAt(KeyPropagators)
	if err != nil {
		return nil, err
	}

	cfg := &propspec.MultiType{}
	for i := range props {
		block, err := blockObject(props, i)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeBlock(block, fmt.Sprintf("%s.%d", KeyPropagators, i))
		if err != nil {
			return nil, err
		}
		cfg.Blocks = append(cfg.Blocks, decoded)
	}

	var user propspec.Termination
	if tree.HasPath(KeyTermination) {
		termObj, err := tree.ObjectAt(KeyTermination)
		if err != nil {
			return nil, err
		}
		if user, err = decodeTermination(termObj, KeyTermination); err != nil {
			return nil, err
		}
	}
	var finalEpoch *float64
	if tree.HasPath(KeyFinalEpoch) {
		epoch, err := tree.FloatAt(KeyFinalEpoch)
		if err != nil {
			return nil, err
		}
		finalEpoch = &epoch
	}
	if cfg.Termination, err = ComposeTermination(user, finalEpoch); err != nil {
		return nil, err
	}

	if cfg.Export, err = decodeExport(tree); err != nil {
		return nil, err
	}
	cfg.SaveVariables = MergeExportVariables(cfg.Export)

	if tree.HasPath(KeyPrintInterval) {
		interval, err := tree.FloatAt(KeyPrintInterval)
		if err != nil {
			return nil, err
		}
		cfg.PrintInterval = &interval
	}

	return cfg, nil
}

// decodeBlock dispatches one propagator entry on its state-kind tag.
func decodeBlock(block proptree.Object, path string) (propspec.Block, error) {
	kind, err := blockKind(block)
	if err != nil {
		return nil, err
	}

	var decoded propspec.Block
	switch kind {
	case propspec.KindTranslational:
		decoded, err = decodeTranslational(block)
	case propspec.KindRotational:
		decoded, err = decodeRotational(block)
	case propspec.KindMass:
		decoded, err = decodeMass(block)
	case propspec.KindHybrid:
		return nil, &InvalidNestingError{Path: path}
	default:
		return nil, &UnsupportedStateTypeError{Tag: kind.Tag()}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

// decodeCore reads the fields shared by every block kind. Initial states
// must be present: resolution has either filled them in or failed earlier.
func decodeCore(block proptree.Object, kind propspec.StateKind) (propspec.BlockCore, error) {
	var core propspec.BlockCore

	propagated, err := block.StringsAt(KeyBodiesToPropagate)
	if err != nil {
		return core, err
	}
	states, err := block.FloatsAt(KeyInitialStates)
	if err != nil {
		return core, err
	}
	if want := kind.StateSize() * len(propagated); len(states) != want {
		return core, fmt.Errorf("key %q: %d state components for %d %s bodies, want %d",
			KeyInitialStates, len(states), len(propagated), kind, want)
	}

	core.BodiesToPropagate = propagated
	core.InitialState = states
	return core, nil
}

func decodeTranslational(block proptree.Object) (*propspec.TranslationalBlock, error) {
	core, err := decodeCore(block, propspec.KindTranslational)
	if err != nil {
		return nil, err
	}
	centrals, err := block.StringsAt(KeyCentralBodies)
	if err != nil {
		return nil, err
	}
	if len(centrals) != len(core.BodiesToPropagate) {
		return nil, fmt.Errorf("%d central bodies for %d propagated bodies",
			len(centrals), len(core.BodiesToPropagate))
	}
	accelerations, err := block.ObjectAt(KeyAccelerations)
	if err != nil {
		return nil, err
	}
	tag, err := block.StringAtOr(KeyPropagatorType, string(propspec.Cowell))
	if err != nil {
		return nil, err
	}
	propagatorType, err := propspec.TranslationalPropagatorFromTag(tag)
	if err != nil {
		return nil, err
	}

	return &propspec.TranslationalBlock{
		BlockCore:      core,
		CentralBodies:  centrals,
		Accelerations:  accelerations,
		PropagatorType: propagatorType,
	}, nil
}

func decodeRotational(block proptree.Object) (*propspec.RotationalBlock, error) {
	core, err := decodeCore(block, propspec.KindRotational)
	if err != nil {
		return nil, err
	}
	torques, err := block.ObjectAt(KeyTorques)
	if err != nil {
		return nil, err
	}
	return &propspec.RotationalBlock{BlockCore: core, Torques: torques}, nil
}

func decodeMass(block proptree.Object) (*propspec.MassBlock, error) {
	core, err := decodeCore(block, propspec.KindMass)
	if err != nil {
		return nil, err
	}
	massRates, err := block.ObjectAt(KeyMassRateModels)
	if err != nil {
		return nil, err
	}
	return &propspec.MassBlock{BlockCore: core, MassRateModels: massRates}, nil
}
