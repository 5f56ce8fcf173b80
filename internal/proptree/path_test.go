package proptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureTree() Object {
	return Object{
		"bodies": Object{
			"Vehicle": Object{
				"mass":         Number(5000),
				"initialState": Numbers(7.0e6, 0, 0, 0, 7500, 0),
			},
		},
		"options": Object{
			"printInterval": Number(3600),
			"verbose":       Bool(true),
		},
		"propagators": List{
			Object{"bodiesToPropagate": Strings("Vehicle")},
		},
	}
}

func TestAtResolvesNestedPaths(t *testing.T) {
	tree := fixtureTree()

	mass, err := tree.FloatAt("bodies.Vehicle.mass")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, mass)

	verbose, err := tree.BoolAt("options.verbose")
	require.NoError(t, err)
	assert.True(t, verbose)

	state, err := tree.FloatsAt("bodies.Vehicle.initialState")
	require.NoError(t, err)
	assert.Equal(t, []float64{7.0e6, 0, 0, 0, 7500, 0}, state)
}

func TestAtIndexesIntoLists(t *testing.T) {
	tree := fixtureTree()

	names, err := tree.StringsAt("propagators.0.bodiesToPropagate")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vehicle"}, names)
}

func TestAtFailsWithFullPath(t *testing.T) {
	tree := fixtureTree()

	_, err := tree.At("bodies.Earth.initialState")
	require.Error(t, err)

	var keyErr *KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "bodies.Earth.initialState", keyErr.Path)
}

func TestAtFailsOnTypeMismatch(t *testing.T) {
	tree := fixtureTree()

	_, err := tree.StringAt("bodies.Vehicle.mass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string")
}

func TestHasPath(t *testing.T) {
	tree := fixtureTree()

	assert.True(t, tree.HasPath("options.printInterval"))
	assert.False(t, tree.HasPath("options.missing"))
	assert.False(t, tree.HasPath("propagators.3"))
}

func TestSetCreatesIntermediateObjects(t *testing.T) {
	tree := Object{}

	require.NoError(t, tree.Set("options.printInterval", Number(60)))

	interval, err := tree.FloatAt("options.printInterval")
	require.NoError(t, err)
	assert.Equal(t, 60.0, interval)
}

func TestSetFailsThroughNonObject(t *testing.T) {
	tree := Object{"options": Number(1)}

	err := tree.Set("options.printInterval", Number(60))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an object")
}

func TestAtOrAndTypedFallbacks(t *testing.T) {
	tree := fixtureTree()

	assert.Equal(t, Number(5000), tree.AtOr("bodies.Vehicle.mass", Number(0)))
	assert.Equal(t, Number(0), tree.AtOr("bodies.Vehicle.area", Number(0)))

	tag, err := tree.StringAtOr("integratedStateType", "translational")
	require.NoError(t, err)
	assert.Equal(t, "translational", tag)

	flag, err := tree.BoolAtOr("options.header", false)
	require.NoError(t, err)
	assert.False(t, flag)
}
