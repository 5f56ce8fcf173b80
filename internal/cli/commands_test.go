package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
propagators:
  - integratedStateType: translational
    bodiesToPropagate: [Vehicle]
    centralBodies: [Earth]
    initialStates: [7000000, 0, 0, 0, 7500, 0]
    accelerations:
      Vehicle:
        Earth:
          - type: pointMassGravity
finalEpoch: 86400
`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommandAcceptsValidConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", validConfig)

	out, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "1 block(s)")
}

func TestValidateCommandReportsFailingKey(t *testing.T) {
	path := writeFile(t, "config.yaml", `
propagators:
  - bodiesToPropagate: [Vehicle]
    centralBodies: [Earth]
    accelerations: {}
finalEpoch: 86400
`)

	out, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "Vehicle")
}

func TestResolveCommandWritesCanonicalJSON(t *testing.T) {
	path := writeFile(t, "config.yaml", validConfig)

	out, err := runCommand(t, "--format", "json", "resolve", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"integratedStateType":"translational"`)
	assert.Contains(t, out, `"termination":{"epoch":86400,"type":"time"}`)
}

func TestResolveCommandTextFormatIsIndented(t *testing.T) {
	path := writeFile(t, "config.yaml", validConfig)

	out, err := runCommand(t, "resolve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"propagators\"")
}

func TestRootCommandRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, "config.yaml", validConfig)

	_, err := runCommand(t, "--format", "xml", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
