package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gpcunfold/internal/logger"
	"github.com/philipparndt/gpcunfold/pkg/analysis"
)

func newAngleCmd(a *app) *cobra.Command {
	var v1, v2 []float64

	cmd := &cobra.Command{
		Use:   "angle",
		Short: "Angle between two vectors",
		Long:  "Print the angle between two 3D vectors, in [0, π].",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, err := toPoint("v1", v1)
			if err != nil {
				return err
			}
			p2, err := toPoint("v2", v2)
			if err != nil {
				return err
			}
			if p1.LengthSquared() == 0 || p2.LengthSquared() == 0 {
				return fmt.Errorf("angle is undefined for a zero-length vector")
			}

			angle := p1.Angle(p2)
			logger.Debug("angle computed", zap.Float64("radians", angle))

			fmt.Fprintln(cmd.OutOrStdout(), analysis.FormatAngle(angle, a.cfg.Output.Precision, a.cfg.Output.Degrees))
			return nil
		},
	}

	pointFlag(cmd, &v1, "v1", "First vector")
	pointFlag(cmd, &v2, "v2", "Second vector")

	return cmd
}
