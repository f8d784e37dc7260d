package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gpcunfold/pkg/geodesic"
	"github.com/philipparndt/gpcunfold/pkg/geometry"
)

var (
	// ErrNonFinite is returned for NaN or infinite input.
	ErrNonFinite = errors.New("non-finite value")
	// ErrCoincidentVertices is returned when two vertices of a triangle are equal.
	ErrCoincidentVertices = errors.New("coincident vertices")
	// ErrDegenerateTriangle is returned when a triangle has (near) zero area.
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	// ErrNegativeDistance is returned for a polar coordinate with distance < 0.
	ErrNegativeDistance = errors.New("negative distance")
)

// DefaultMinArea is the area below which a triangle is treated as degenerate.
const DefaultMinArea = 1e-12

// CheckTriangle verifies the preconditions of geodesic.Update for tri.
func CheckTriangle(tri geodesic.Triangle, minArea float64) error {
	named := []struct {
		name string
		v    geometry.Vector3
	}{{"I", tri.I}, {"J", tri.J}, {"K", tri.K}}
	for _, p := range named {
		if !p.v.IsFinite() {
			return fmt.Errorf("vertex %s %s: %w", p.name, FormatVector(p.v), ErrNonFinite)
		}
	}

	switch {
	case tri.J == tri.K:
		return fmt.Errorf("J and K: %w", ErrCoincidentVertices)
	case tri.I == tri.J:
		return fmt.Errorf("I and J: %w", ErrCoincidentVertices)
	case tri.I == tri.K:
		return fmt.Errorf("I and K: %w", ErrCoincidentVertices)
	}

	if area := facetOf(tri).Area(); area <= minArea {
		return fmt.Errorf("area %g <= %g: %w", area, minArea, ErrDegenerateTriangle)
	}
	return nil
}

// CheckPolar verifies that p is a usable known coordinate.
func CheckPolar(p geodesic.Polar) error {
	if math.IsNaN(p.Distance) || math.IsInf(p.Distance, 0) ||
		math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
		return fmt.Errorf("polar (%v, %v): %w", p.Distance, p.Angle, ErrNonFinite)
	}
	if p.Distance < 0 {
		return fmt.Errorf("distance %v: %w", p.Distance, ErrNegativeDistance)
	}
	return nil
}

// CheckUpdate runs all checks for one update.
func CheckUpdate(tri geodesic.Triangle, pj, pk geodesic.Polar, minArea float64) error {
	if err := CheckTriangle(tri, minArea); err != nil {
		return err
	}
	if err := CheckPolar(pj); err != nil {
		return fmt.Errorf("at J: %w", err)
	}
	if err := CheckPolar(pk); err != nil {
		return fmt.Errorf("at K: %w", err)
	}
	return nil
}

func facetOf(tri geodesic.Triangle) geometry.Triangle {
	return geometry.NewTriangle(geometry.Vector3{}, tri.I, tri.J, tri.K)
}
