package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// LoadConfig reads a configuration file into a tree. The format is selected
// by extension: .cue files are evaluated through the CUE SDK, everything
// else is parsed as YAML (which covers JSON).
func LoadConfig(path string) (proptree.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	if filepath.Ext(path) == ".cue" {
		ctx := cuecontext.New()
		v := ctx.CompileBytes(data, cue.Filename(path))
		tree, err := proptree.FromCUE(v)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", path, err)
		}
		return tree, nil
	}

	tree, err := proptree.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tree, nil
}
