// Package geodesic implements the per-triangle update used to build a
// geodesic polar coordinate map over a triangle mesh.
//
// Each update unfolds a triangle (I, J, K) into the plane, places the image
// of the source point from the known distances at J and K, and reads off
// the distance and direction at I. When the planar construction has no
// valid solution inside the triangle the path is routed along the cheaper
// of the two known edges instead.
//
// All functions are pure and may be called concurrently.
package geodesic

import (
	"math"

	"github.com/philipparndt/gpcunfold/pkg/geometry"
)

const twoPi = 2 * math.Pi

// Polar is a geodesic polar coordinate relative to a fixed source point
type Polar struct {
	Distance float64
	Angle    float64
}

// NewPolar creates a polar coordinate with its angle normalized
func NewPolar(distance, angle float64) Polar {
	return Polar{Distance: distance, Angle: NormalizeAngle(angle)}
}

// NormalizeAngle maps an angle in radians into [0, 2π)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	// a tiny negative input rounds up to exactly 2π above
	if a >= twoPi {
		a = 0
	}
	return a
}

// Triangle holds the vertices of one update. I is solved for, J and K carry
// known polar coordinates.
type Triangle struct {
	I, J, K geometry.Vector3
}

// NewTriangle creates a triangle for an update
func NewTriangle(i, j, k geometry.Vector3) Triangle {
	return Triangle{I: i, J: j, K: k}
}

// FromFacet converts a mesh facet, solving for its first vertex
func FromFacet(t geometry.Triangle) Triangle {
	return Triangle{I: t.V1, J: t.V2, K: t.V3}
}
