package codec

import (
	"fmt"

	"github.com/SpaceArchitect/tudat/internal/propspec"
	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// kindEncodeOrder fixes the grouping order of the flattened propagator list.
var kindEncodeOrder = []propspec.StateKind{
	propspec.KindTranslational,
	propspec.KindRotational,
	propspec.KindMass,
}

// Encode writes typed propagation settings back into a configuration tree.
// Blocks are grouped by state kind, declaration order preserved within each
// kind. The print interval is written only when it was explicitly set.
func Encode(cfg *propspec.MultiType) (proptree.Object, error) {
	tree := proptree.Object{}

	var props proptree.List
	for _, kind := range kindEncodeOrder {
		for _, block := range cfg.BlocksOfKind(kind) {
			enc, err := encodeBlock(block)
			if err != nil {
				return nil, err
			}
			props = append(props, enc)
		}
	}
	if err := tree.Set(KeyPropagators, props); err != nil {
		return nil, err
	}

	if cfg.Termination != nil {
		term, err := encodeTermination(cfg.Termination)
		if err != nil {
			return nil, err
		}
		if err := tree.Set(KeyTermination, term); err != nil {
			return nil, err
		}
	}

	if len(cfg.Export) > 0 {
		if err := tree.Set(KeyExport, encodeExport(cfg.Export)); err != nil {
			return nil, err
		}
	}

	if cfg.PrintInterval != nil {
		if err := tree.Set(KeyPrintInterval, proptree.Number(*cfg.PrintInterval)); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// encodeBlock writes exactly the fields each block kind reads on decode.
func encodeBlock(b propspec.Block) (proptree.Object, error) {
	obj := proptree.Object{
		KeyIntegratedStateType: proptree.String(b.Kind().Tag()),
	}
	if len(b.State()) > 0 {
		obj[KeyInitialStates] = proptree.Numbers(b.State()...)
	}
	obj[KeyBodiesToPropagate] = proptree.Strings(b.Bodies()...)

	switch block := b.(type) {
	case *propspec.TranslationalBlock:
		obj[KeyPropagatorType] = proptree.String(string(block.PropagatorType))
		obj[KeyCentralBodies] = proptree.Strings(block.CentralBodies...)
		obj[KeyAccelerations] = block.Accelerations
	case *propspec.RotationalBlock:
		obj[KeyTorques] = block.Torques
	case *propspec.MassBlock:
		obj[KeyMassRateModels] = block.MassRateModels
	default:
		// The Block variant is sealed; any other value means a hybrid or
		// custom payload was forced in through an unchecked conversion.
		return nil, fmt.Errorf("cannot encode block of type %T", b)
	}
	return obj, nil
}
