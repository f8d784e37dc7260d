package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gpcunfold/pkg/geometry"
)

// pointFlag registers a required "x,y,z" flag.
func pointFlag(cmd *cobra.Command, target *[]float64, name, usage string) {
	cmd.Flags().Float64SliceVar(target, name, nil, usage+" as x,y,z")
	_ = cmd.MarkFlagRequired(name)
}

func toPoint(name string, xyz []float64) (geometry.Vector3, error) {
	if len(xyz) != 3 {
		return geometry.Vector3{}, fmt.Errorf("--%s needs 3 coordinates, got %d", name, len(xyz))
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

// knownFlags holds the polar coordinates at J and K given on the command line.
type knownFlags struct {
	uj, uk         float64
	thetaJ, thetaK float64
}

func (k *knownFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&k.uj, "uj", 0, "Geodesic distance at J")
	cmd.Flags().Float64Var(&k.uk, "uk", 0, "Geodesic distance at K")
	cmd.Flags().Float64Var(&k.thetaJ, "thetaj", 0, "Polar angle at J in radians")
	cmd.Flags().Float64Var(&k.thetaK, "thetak", 0, "Polar angle at K in radians")
	_ = cmd.MarkFlagRequired("uj")
	_ = cmd.MarkFlagRequired("uk")
}
