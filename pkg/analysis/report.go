package analysis

import (
	"math"

	"github.com/philipparndt/gpcunfold/pkg/geodesic"
	"github.com/philipparndt/gpcunfold/pkg/geometry"
	"github.com/philipparndt/gpcunfold/pkg/stl"
)

// MeshReport summarises how suitable a model is for polar map propagation
type MeshReport struct {
	BoundingBox     geometry.BoundingBox
	SurfaceArea     float64
	TriangleCount   int
	DegenerateCount int
	MinEdgeLength   float64
	MaxEdgeLength   float64
	AvgEdgeLength   float64
	// Indices of facets that fail CheckTriangle
	Degenerate []int
}

// AnalyzeModel collects edge statistics and flags facets the update cannot handle
func AnalyzeModel(model *stl.Model, minArea float64) *MeshReport {
	report := &MeshReport{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	edges := 0

	for i, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
			edges++
		}

		if CheckTriangle(geodesic.FromFacet(triangle), minArea) != nil {
			report.Degenerate = append(report.Degenerate, i)
		}
	}

	report.DegenerateCount = len(report.Degenerate)
	if edges > 0 {
		report.MinEdgeLength = minLength
		report.MaxEdgeLength = maxLength
		report.AvgEdgeLength = totalLength / float64(edges)
	}

	return report
}
