package geodesic

import (
	"math"
)

// Branch identifies which part of the update produced a result.
type Branch int

const (
	// BranchInterior means the source image projects inside the triangle.
	BranchInterior Branch = iota
	// BranchNoIntersection means the circles around J and K do not meet.
	BranchNoIntersection
	// BranchOutside means the source image lies beyond the edge at J or K.
	BranchOutside
	// BranchZeroSpan means J and K are seen at the same angle from the source image.
	BranchZeroSpan
)

func (b Branch) String() string {
	switch b {
	case BranchInterior:
		return "interior"
	case BranchNoIntersection:
		return "no-intersection"
	case BranchOutside:
		return "outside"
	case BranchZeroSpan:
		return "zero-span"
	default:
		return "unknown"
	}
}

// Fallback reports whether the result came from the edge-wrap rule.
func (b Branch) Fallback() bool {
	return b != BranchInterior
}

// Result is a solved polar coordinate and the branch that produced it.
type Result struct {
	Polar
	Branch Branch
}

// Update computes the polar coordinate at tri.I from the coordinates at
// tri.J and tri.K.
//
// The triangle must have positive area and J must differ from K; otherwise
// the result contains NaN or Inf.
func Update(tri Triangle, pj, pk Polar) Polar {
	return Solve(tri, pj, pk).Polar
}

// Solve is Update that also reports the branch taken.
func Solve(tri Triangle, pj, pk Polar) Result {
	uj, uk := pj.Distance, pk.Distance

	ej := tri.J.Sub(tri.I)
	ek := tri.K.Sub(tri.I)
	ekj := tri.K.Sub(tri.J)
	ejLen := ej.Length()
	ekLen := ek.Length()
	ekjSq := ekj.LengthSquared()

	wrap := func(b Branch) Result {
		return Result{Polar: EdgeWrap(uj, ejLen, pj.Angle, uk, ekLen, pk.Angle), Branch: b}
	}

	// twice the triangle area
	area := ejLen * ekLen * math.Sin(ej.Angle(ek))

	radicand := (ekjSq - (uj-uk)*(uj-uk)) * ((uj+uk)*(uj+uk) - ekjSq)
	if radicand <= 0 {
		return wrap(BranchNoIntersection)
	}

	h := math.Sqrt(radicand)
	ujSq := uj * uj
	ukSq := uk * uk
	xj := area*(ekjSq+ukSq-ujSq) + ek.Dot(ekj)*h
	xk := area*(ekjSq+ujSq-ukSq) - ej.Dot(ekj)*h
	if xj < 0 || xk < 0 {
		return wrap(BranchOutside)
	}

	denominator := 2 * area * ekjSq
	xj /= denominator
	xk /= denominator

	offset := ej.Mul(xj).Add(ek.Mul(xk))
	ui := offset.Length()

	// Angles are measured at the source image, after moving it to the origin.
	source := tri.I.Add(offset)
	i := tri.I.Sub(source)
	j := tri.J.Sub(source)
	k := tri.K.Sub(source)

	phiKJ := k.Angle(j)
	phiIJ := i.Angle(j)
	if phiKJ == 0 {
		return wrap(BranchZeroSpan)
	}

	alpha := phiIJ / phiKJ
	theta := NormalizeAngle((1-alpha)*pj.Angle + alpha*pk.Angle)

	return Result{Polar: Polar{Distance: ui, Angle: theta}, Branch: BranchInterior}
}

// EdgeWrap routes the path to I through J or K, whichever gives the shorter
// total distance, and takes that vertex's angle. Ties go to J.
func EdgeWrap(uj, ejLen, thetaJ, uk, ekLen, thetaK float64) Polar {
	j := uj + ejLen
	k := uk + ekLen
	if j <= k {
		return Polar{Distance: j, Angle: NormalizeAngle(thetaJ)}
	}
	return Polar{Distance: k, Angle: NormalizeAngle(thetaK)}
}
