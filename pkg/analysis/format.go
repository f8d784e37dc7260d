package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gpcunfold/pkg/geodesic"
	"github.com/philipparndt/gpcunfold/pkg/geometry"
)

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatAngle formats an angle in radians, or degrees when requested.
func FormatAngle(angle float64, precision int, degrees bool) string {
	if degrees {
		return fmt.Sprintf("%.*f°", precision, angle*180/math.Pi)
	}
	return fmt.Sprintf("%.*f rad", precision, angle)
}

// FormatPolar formats a polar coordinate as "distance, angle"
func FormatPolar(p geodesic.Polar, precision int, degrees bool) string {
	return fmt.Sprintf("u=%.*f θ=%s", precision, p.Distance, FormatAngle(p.Angle, precision, degrees))
}
