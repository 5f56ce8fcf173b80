package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SpaceArchitect/tudat/internal/codec"
	"github.com/SpaceArchitect/tudat/internal/propspec"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool     `json:"valid"`
	Blocks    int      `json:"blocks,omitempty"`
	Variables []string `json:"variables,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var epoch float64

	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a configuration without producing output",
		Long: `Validate a propagation configuration.

Decodes the configuration without an ephemeris source, so every block must
either declare initial states or declare per-body states in the bodies
section. Reports the first failing key path, body name, or state-kind tag.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], epoch, cmd)
		},
	}

	cmd.Flags().Float64Var(&epoch, "epoch", 0, "integrator initial epoch (seconds)")

	return cmd
}

func runValidate(rootOpts *RootOptions, configPath string, epoch float64, cmd *cobra.Command) error {
	result := ValidationResult{Valid: true}

	tree, err := LoadConfig(configPath)
	if err == nil {
		var cfg *propspec.MultiType
		if cfg, err = codec.Decode(tree, nil, epoch); err == nil {
			result.Blocks = len(cfg.Blocks)
			for _, v := range cfg.SaveVariables {
				result.Variables = append(result.Variables, v.ID())
			}
		}
	}
	if err != nil {
		result.Valid = false
		result.Error = err.Error()
	}

	if rootOpts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		if encErr := enc.Encode(result); encErr != nil {
			return encErr
		}
	} else if result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d block(s), %d saved variable(s))\n",
			configPath, result.Blocks, len(result.Variables))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid: %s\n", configPath, result.Error)
	}

	if !result.Valid {
		return err
	}
	return nil
}
