package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SpaceArchitect/tudat/internal/bodies"
	"github.com/SpaceArchitect/tudat/internal/codec"
	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	Ephemeris string  // path to a SQLite ephemeris store (optional)
	Epoch     float64 // integrator initial epoch, seconds
	Out       string  // output path, "-" for stdout
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <config>",
		Short: "Resolve a configuration into canonical propagation settings",
		Long: `Resolve a propagation configuration into canonical form.

Decodes the configuration into typed settings (filling in initial states
from the ephemeris store when possible) and re-encodes the result as
canonical JSON with deterministic key order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Ephemeris, "ephemeris", "", "SQLite ephemeris store for initial-state inference")
	cmd.Flags().Float64Var(&opts.Epoch, "epoch", 0, "integrator initial epoch (seconds)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "-", "output file (- for stdout)")

	return cmd
}

func runResolve(rootOpts *RootOptions, opts *ResolveOptions, configPath string, cmd *cobra.Command) error {
	// Run tokens correlate verbose logs across invocations; UUIDv7 keeps
	// them sortable by creation time.
	runToken := uuid.Must(uuid.NewV7()).String()
	if rootOpts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "run %s: resolving %s\n", runToken, configPath)
	}

	tree, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	var reg *bodies.Registry
	if opts.Ephemeris != "" {
		store, err := bodies.OpenStore(opts.Ephemeris)
		if err != nil {
			return err
		}
		defer store.Close()
		if reg, err = store.LoadRegistry(); err != nil {
			return err
		}
		if rootOpts.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "run %s: loaded ephemerides for %d bodies\n",
				runToken, len(reg.Names()))
		}
	}

	cfg, err := codec.Decode(tree, reg, opts.Epoch)
	if err != nil {
		return err
	}

	if rootOpts.Verbose {
		epoch, ok := codec.FirstTimeEpoch(cfg.Termination)
		stop := "no time condition"
		if ok {
			stop = fmt.Sprintf("stops at epoch %g", epoch)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %d block(s), %d saved variable(s), %s\n",
			runToken, len(cfg.Blocks), len(cfg.SaveVariables), stop)
	}

	encoded, err := codec.Encode(cfg)
	if err != nil {
		return err
	}

	var out []byte
	if rootOpts.Format == "json" {
		if out, err = proptree.MarshalCanonical(encoded); err != nil {
			return err
		}
	} else {
		if out, err = proptree.MarshalIndent(encoded); err != nil {
			return err
		}
	}
	out = append(out, '\n')

	if opts.Out == "-" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(opts.Out, out, 0o644)
}
