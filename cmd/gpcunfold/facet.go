package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gpcunfold/internal/logger"
	"github.com/philipparndt/gpcunfold/pkg/batch"
	"github.com/philipparndt/gpcunfold/pkg/geometry"
	"github.com/philipparndt/gpcunfold/pkg/stl"
)

func coords(v geometry.Vector3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func newFacetCmd(a *app) *cobra.Command {
	var (
		index int
		solve int
		known knownFlags
	)

	cmd := &cobra.Command{
		Use:   "facet [file]",
		Short: "Solve the update on one facet of an STL file",
		Long: `Load an STL file and run the triangle update on one facet. --solve picks the
facet vertex (1, 2 or 3) to solve for; the next two vertices in winding order
are J and K.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if solve < 1 || solve > 3 {
				return fmt.Errorf("--solve must be 1, 2 or 3, got %d", solve)
			}

			model, err := stl.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing STL file: %w", err)
			}
			logger.Debug("model loaded", zap.String("file", args[0]), zap.Int("triangles", model.TriangleCount()))

			facet, err := model.Facet(index)
			if err != nil {
				return err
			}
			facet = facet.Rotate(solve - 1)

			c := batch.Case{
				Name:   fmt.Sprintf("facet %d", index),
				I:      coords(facet.V1),
				J:      coords(facet.V2),
				K:      coords(facet.V3),
				JPolar: batch.PolarSpec{Distance: known.uj, Angle: known.thetaJ},
				KPolar: batch.PolarSpec{Distance: known.uk, Angle: known.thetaK},
			}

			outcome := batch.Evaluate(c, a.cfg.Validate.MinArea)
			if outcome.Err != nil {
				return fmt.Errorf("facet %d: %w", index, outcome.Err)
			}
			_, err = writeOutcomes(cmd.OutOrStdout(), []batch.Outcome{outcome}, a.cfg.Output)
			return err
		},
	}

	cmd.Flags().IntVarP(&index, "index", "n", 0, "Facet index (0-based)")
	cmd.Flags().IntVar(&solve, "solve", 1, "Facet vertex to solve for (1, 2 or 3)")
	known.register(cmd)

	return cmd
}
