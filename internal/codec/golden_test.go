package codec

import (
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// TestResolveCanonicalGolden pins the canonical byte output of a full
// decode/encode pass. Regenerate with:
//
//	go test ./internal/codec -update
func TestResolveCanonicalGolden(t *testing.T) {
	data, err := os.ReadFile("testdata/resolve_basic.yaml")
	require.NoError(t, err)

	tree, err := proptree.FromYAML(data)
	require.NoError(t, err)

	cfg, err := Decode(tree, nil, 0)
	require.NoError(t, err)

	encoded, err := Encode(cfg)
	require.NoError(t, err)

	out, err := proptree.MarshalCanonical(encoded)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "resolve_basic", out)
}
