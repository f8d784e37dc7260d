package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/gpcunfold/pkg/batch"
)

func newUpdateCmd(a *app) *cobra.Command {
	var i, j, k []float64
	var known knownFlags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Solve one triangle update",
		Long: `Compute the geodesic distance and polar angle at vertex I of the triangle
(I, J, K) from the known values at J and K.`,
		Example: "  gpcunfold update --i 0,0,0 --j 1,0,0 --k 0,1,0 --uj 1 --uk 1 --thetak 1.5708",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := batch.Case{
				Name:   "update",
				I:      i,
				J:      j,
				K:      k,
				JPolar: batch.PolarSpec{Distance: known.uj, Angle: known.thetaJ},
				KPolar: batch.PolarSpec{Distance: known.uk, Angle: known.thetaK},
			}

			outcome := batch.Evaluate(c, a.cfg.Validate.MinArea)
			if outcome.Err != nil {
				return outcome.Err
			}
			_, err := writeOutcomes(cmd.OutOrStdout(), []batch.Outcome{outcome}, a.cfg.Output)
			return err
		},
	}

	pointFlag(cmd, &i, "i", "Vertex to solve for")
	pointFlag(cmd, &j, "j", "Vertex with known coordinate")
	pointFlag(cmd, &k, "k", "Vertex with known coordinate")
	known.register(cmd)

	return cmd
}
