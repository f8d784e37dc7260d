package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gpcunfold/internal/config"
	"github.com/philipparndt/gpcunfold/internal/logger"
	"github.com/philipparndt/gpcunfold/version"
)

// app carries state shared by all subcommands after flag parsing.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "gpcunfold",
		Short: "Geodesic polar coordinates by triangle unfolding",
		Long: `gpcunfold computes the geodesic distance and direction at one vertex of a
triangle from the known values at the other two, the update step used to
propagate a geodesic polar coordinate map across a triangle mesh.

Triangles can be given on the command line, taken from an STL file, or
listed in a YAML case file.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newAngleCmd(a),
		newUpdateCmd(a),
		newFacetCmd(a),
		newBatchCmd(a),
		newInfoCmd(a),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
