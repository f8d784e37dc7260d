package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gpcunfold/pkg/analysis"
	"github.com/philipparndt/gpcunfold/pkg/stl"
)

const maxListedDegenerate = 10

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Check an STL file for facets the update cannot handle",
		Long:  "Show triangle count, surface area, edge statistics and the facets that are degenerate or have coincident vertices.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			model, err := stl.Parse(filename)
			if err != nil {
				return fmt.Errorf("parsing STL file: %w", err)
			}

			report := analysis.AnalyzeModel(model, a.cfg.Validate.MinArea)
			w := cmd.OutOrStdout()
			p := a.cfg.Output.Precision

			fmt.Fprintln(w, "STL File Information")
			fmt.Fprintln(w, "====================")
			if model.Name != "" {
				fmt.Fprintf(w, "Name: %s\n", model.Name)
			}
			fmt.Fprintf(w, "File: %s\n\n", filename)

			fmt.Fprintf(w, "Triangles: %d\n", report.TriangleCount)
			fmt.Fprintf(w, "Surface Area: %.*f square units\n", p, report.SurfaceArea)
			fmt.Fprintf(w, "Diagonal: %.*f units\n\n", p, report.BoundingBox.Diagonal())

			fmt.Fprintln(w, "Edge Lengths:")
			fmt.Fprintf(w, "  Minimum: %.*f units\n", p, report.MinEdgeLength)
			fmt.Fprintf(w, "  Maximum: %.*f units\n", p, report.MaxEdgeLength)
			fmt.Fprintf(w, "  Average: %.*f units\n\n", p, report.AvgEdgeLength)

			fmt.Fprintf(w, "Degenerate facets: %d\n", report.DegenerateCount)
			for n, idx := range report.Degenerate {
				if n == maxListedDegenerate {
					fmt.Fprintf(w, "  ... and %d more\n", report.DegenerateCount-n)
					break
				}
				fmt.Fprintf(w, "  #%d\n", idx)
			}
			return nil
		},
	}
}
