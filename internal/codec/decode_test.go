package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpaceArchitect/tudat/internal/propspec"
	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// multiKindTree declares one block of every supported kind plus termination,
// export targets, and a print interval.
func multiKindTree() proptree.Object {
	translational := translationalBlockTree()
	translational["initialStates"] = proptree.Numbers(7.0e6, 0, 0, 0, 7500, 0)
	translational["type"] = proptree.String("encke")

	rotational := proptree.Object{
		"integratedStateType": proptree.String("rotational"),
		"bodiesToPropagate":   proptree.Strings("Vehicle"),
		"initialStates":       proptree.Numbers(1, 0, 0, 0, 0, 0, 0),
		"torques": proptree.Object{
			"Vehicle": proptree.Object{},
		},
	}
	mass := proptree.Object{
		"integratedStateType": proptree.String("mass"),
		"bodiesToPropagate":   proptree.Strings("Vehicle"),
		"initialStates":       proptree.Numbers(5000),
		"massRateModels": proptree.Object{
			"Vehicle": proptree.List{
				proptree.Object{"type": proptree.String("fromThrust")},
			},
		},
	}

	return proptree.Object{
		"propagators": proptree.List{translational, rotational, mass},
		"termination": proptree.Object{
			"type": proptree.String("variable"),
			"variable": proptree.Object{
				"quantity":     proptree.String("altitude"),
				"body":         proptree.String("Vehicle"),
				"relativeBody": proptree.String("Earth"),
			},
			"limit":           proptree.Number(100000),
			"useAsLowerLimit": proptree.Bool(true),
		},
		"finalEpoch": proptree.Number(86400),
		"export": proptree.List{
			proptree.Object{
				"file": proptree.String("orbit.dat"),
				"variables": proptree.List{
					proptree.Object{
						"quantity": proptree.String("altitude"),
						"body":     proptree.String("Vehicle"),
					},
					proptree.Object{
						"quantity": proptree.String("altitude"),
						"body":     proptree.String("Vehicle"),
					},
				},
			},
		},
		"options": proptree.Object{
			"printInterval": proptree.Number(3600),
		},
	}
}

func TestDecodeMultiKindConfiguration(t *testing.T) {
	cfg, err := Decode(multiKindTree(), nil, 0)
	require.NoError(t, err)

	require.Len(t, cfg.Blocks, 3)

	translational, ok := cfg.Blocks[0].(*propspec.TranslationalBlock)
	require.True(t, ok)
	assert.Equal(t, []string{"Vehicle"}, translational.Bodies())
	assert.Equal(t, []string{"Earth"}, translational.CentralBodies)
	assert.Equal(t, propspec.Encke, translational.PropagatorType)
	assert.Equal(t, []float64{7.0e6, 0, 0, 0, 7500, 0}, translational.State())

	rotational, ok := cfg.Blocks[1].(*propspec.RotationalBlock)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0, 0, 0, 0, 0, 0}, rotational.State())

	mass, ok := cfg.Blocks[2].(*propspec.MassBlock)
	require.True(t, ok)
	assert.Equal(t, []float64{5000}, mass.State())

	for _, block := range cfg.Blocks {
		assert.NoError(t, propspec.ValidateState(block))
	}

	// The user condition has no time sub-condition, so a fulfil-any hybrid
	// with the synthesized final-epoch condition is produced.
	hybrid, ok := cfg.Termination.(*propspec.HybridTermination)
	require.True(t, ok)
	require.Len(t, hybrid.Conditions, 2)
	epoch, found := FirstTimeEpoch(cfg.Termination)
	require.True(t, found)
	assert.Equal(t, 86400.0, epoch)

	// Duplicate export variable collapses to one saved variable.
	require.Len(t, cfg.SaveVariables, 1)
	assert.Equal(t, "altitude@Vehicle", cfg.SaveVariables[0].ID())

	require.NotNil(t, cfg.PrintInterval)
	assert.Equal(t, 3600.0, *cfg.PrintInterval)
}

func TestDecodeSingleBlockFromEphemeris(t *testing.T) {
	tree := proptree.Object{
		"propagators": proptree.List{translationalBlockTree()},
		"finalEpoch":  proptree.Number(86400),
	}

	cfg, err := Decode(tree, testRegistry(), 0)
	require.NoError(t, err)

	require.Len(t, cfg.Blocks, 1)
	assert.Equal(t, []float64{7.0e6, 0, 0, 0, 7500, 0}, cfg.Blocks[0].State())
}

func TestDecodeDefaultsToTranslational(t *testing.T) {
	block := translationalBlockTree()
	delete(block, "integratedStateType")
	block["initialStates"] = proptree.Numbers(7.0e6, 0, 0, 0, 7500, 0)
	tree := proptree.Object{
		"propagators": proptree.List{block},
		"finalEpoch":  proptree.Number(86400),
	}

	cfg, err := Decode(tree, nil, 0)
	require.NoError(t, err)

	require.Len(t, cfg.Blocks, 1)
	assert.Equal(t, propspec.KindTranslational, cfg.Blocks[0].Kind())
	translational := cfg.Blocks[0].(*propspec.TranslationalBlock)
	assert.Equal(t, propspec.Cowell, translational.PropagatorType)
}

func TestDecodeRejectsHybridBlock(t *testing.T) {
	tree := proptree.Object{
		"propagators": proptree.List{proptree.Object{
			"integratedStateType": proptree.String("hybrid"),
			"bodiesToPropagate":   proptree.Strings("Vehicle"),
		}},
		"finalEpoch": proptree.Number(86400),
	}

	_, err := Decode(tree, nil, 0)

	var nesting *InvalidNestingError
	require.ErrorAs(t, err, &nesting)
	assert.Contains(t, nesting.Path, "propagators.0")
}

func TestDecodeRejectsCustomBlock(t *testing.T) {
	tree := proptree.Object{
		"propagators": proptree.List{proptree.Object{
			"integratedStateType": proptree.String("custom"),
			"bodiesToPropagate":   proptree.Strings("Vehicle"),
			"initialStates":       proptree.Numbers(1),
		}},
		"finalEpoch": proptree.Number(86400),
	}

	_, err := Decode(tree, nil, 0)

	var unsupported *UnsupportedStateTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "custom", unsupported.Tag)
}

func TestDecodeRejectsUnknownTag(t *testing.T) {
	tree := proptree.Object{
		"propagators": proptree.List{proptree.Object{
			"integratedStateType": proptree.String("spin"),
			"bodiesToPropagate":   proptree.Strings("Vehicle"),
		}},
		"finalEpoch": proptree.Number(86400),
	}

	_, err := Decode(tree, nil, 0)

	var unknown *propspec.UnknownTagError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "spin", unknown.Tag)
}

func TestDecodeRejectsMisSizedInitialStates(t *testing.T) {
	block := translationalBlockTree()
	block["initialStates"] = proptree.Numbers(1, 2, 3)
	tree := proptree.Object{
		"propagators": proptree.List{block},
		"finalEpoch":  proptree.Number(86400),
	}

	_, err := Decode(tree, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 6")
}

func TestDecodeWithoutPrintInterval(t *testing.T) {
	block := translationalBlockTree()
	block["initialStates"] = proptree.Numbers(7.0e6, 0, 0, 0, 7500, 0)
	tree := proptree.Object{
		"propagators": proptree.List{block},
		"finalEpoch":  proptree.Number(86400),
	}

	cfg, err := Decode(tree, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, cfg.PrintInterval)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cfg, err := Decode(multiKindTree(), nil, 0)
	require.NoError(t, err)

	encoded, err := Encode(cfg)
	require.NoError(t, err)

	// The encoded tree carries the termination condition verbatim, so the
	// second decode sees a declared time condition and synthesizes nothing.
	again, err := Decode(encoded, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, cfg.Blocks, again.Blocks)
	assert.Equal(t, cfg.Termination, again.Termination)
	assert.Equal(t, cfg.Export, again.Export)
	assert.Equal(t, cfg.SaveVariables, again.SaveVariables)
	assert.Equal(t, cfg.PrintInterval, again.PrintInterval)
}

func TestEncodeOmitsUnsetPrintInterval(t *testing.T) {
	block := translationalBlockTree()
	block["initialStates"] = proptree.Numbers(7.0e6, 0, 0, 0, 7500, 0)
	tree := proptree.Object{
		"propagators": proptree.List{block},
		"finalEpoch":  proptree.Number(86400),
	}

	cfg, err := Decode(tree, nil, 0)
	require.NoError(t, err)

	encoded, err := Encode(cfg)
	require.NoError(t, err)
	assert.False(t, encoded.HasPath(KeyPrintInterval))
	assert.False(t, encoded.HasPath("options"))
}

func TestEncodeGroupsBlocksByKind(t *testing.T) {
	// Declaration order interleaves kinds; encoding groups them.
	cfg := &propspec.MultiType{
		Blocks: []propspec.Block{
			&propspec.MassBlock{
				BlockCore: propspec.BlockCore{
					BodiesToPropagate: []string{"A"},
					InitialState:      []float64{100},
				},
				MassRateModels: proptree.Object{},
			},
			&propspec.TranslationalBlock{
				BlockCore: propspec.BlockCore{
					BodiesToPropagate: []string{"A"},
					InitialState:      []float64{1, 2, 3, 4, 5, 6},
				},
				CentralBodies:  []string{"Earth"},
				Accelerations:  proptree.Object{},
				PropagatorType: propspec.Cowell,
			},
			&propspec.MassBlock{
				BlockCore: propspec.BlockCore{
					BodiesToPropagate: []string{"B"},
					InitialState:      []float64{200},
				},
				MassRateModels: proptree.Object{},
			},
		},
		Termination: &propspec.TimeTermination{Epoch: 86400},
	}

	encoded, err := Encode(cfg)
	require.NoError(t, err)

	tags := []string{}
	props, err := encoded.ListAt(KeyPropagators)
	require.NoError(t, err)
	for i := range props {
		tag, err := encoded.StringAt(fmt.Sprintf("%s.%d.%s", KeyPropagators, i, KeyIntegratedStateType))
		require.NoError(t, err)
		tags = append(tags, tag)
	}
	assert.Equal(t, []string{"translational", "mass", "mass"}, tags)

	// Declaration order within a kind is preserved.
	first, err := encoded.StringsAt("propagators.1.bodiesToPropagate")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, first)
	second, err := encoded.StringsAt("propagators.2.bodiesToPropagate")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, second)
}
