package curve3

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Basis selects the mapping from four control points to a curve.
type Basis uint8

const (
	// BasisLinear interprets the control points as a polyline.
	BasisLinear Basis = iota
	// BasisBezier interprets the control points as a cubic Bézier curve.
	BasisBezier
	// BasisBSpline interprets the control points as one span of a uniform
	// cubic B-spline.
	BasisBSpline
)

func (b Basis) String() string {
	switch b {
	case BasisLinear:
		return "linear"
	case BasisBezier:
		return "bezier"
	case BasisBSpline:
		return "bspline"
	default:
		return fmt.Sprintf("Basis(%d)", uint8(b))
	}
}

// Subtype selects how a curve is rendered, and with it the bounding
// strategy: round curves are swept-radius tubes and need true
// offset-surface bounds, flat curves are ribbons and are bounded by
// tessellated line segments.
type Subtype uint8

const (
	// SubtypeRound renders the curve as a swept-radius tube.
	SubtypeRound Subtype = iota
	// SubtypeFlat renders the curve as a camera-facing ribbon.
	SubtypeFlat
)

func (s Subtype) String() string {
	switch s {
	case SubtypeRound:
		return "round"
	case SubtypeFlat:
		return "flat"
	default:
		return fmt.Sprintf("Subtype(%d)", uint8(s))
	}
}

// SpaceCurve describes a 3D curve with a co-located radius, parametrized
// over t ∈ [0, 1]. It is the evaluation strategy behind all bounding in
// this package: [Bezier], [BSpline], and [Polyline] implement it, and the
// validity, bounding, and frame computations are generic over it.
type SpaceCurve interface {
	// Eval evaluates position and radius at parameter t.
	Eval(t float32) ControlPoint
	// EvalDerivative evaluates the position derivative at parameter t.
	EvalDerivative(t float32) Vec3
	// Start returns the curve's start point, Eval(0).
	Start() ControlPoint
	// End returns the curve's end point, Eval(1).
	End() ControlPoint
	// AccurateBounds returns the exact axis-aligned bounds of the curve
	// body, expanded by the maximum radius along the curve. This bounds
	// the swept tube of a round curve.
	AccurateBounds() Box3
	// TessellatedBounds returns the union of the boxes of rate uniform
	// line segments approximating the curve, each expanded by the larger
	// of its endpoint radii. Cheaper and conservative; appropriate for
	// flat curves. The rate affects tightness, never correctness.
	TessellatedBounds(rate int) Box3
}

// CurveOf constructs the [SpaceCurve] interpretation of four control
// points under the given basis.
func CurveOf(basis Basis, p0, p1, p2, p3 ControlPoint) SpaceCurve {
	switch basis {
	case BasisBezier:
		return Bezier{p0, p1, p2, p3}
	case BasisBSpline:
		return BSpline{p0, p1, p2, p3}
	default:
		return Polyline{p0, p1, p2, p3}
	}
}

// cubicPoly is a cubic polynomial c0 + c1·t + c2·t² + c3·t³ in power form.
// Converting each basis to power form lets evaluation, differentiation, and
// extrema share one implementation across bases and across the position and
// radius components.
type cubicPoly struct {
	c0, c1, c2, c3 float32
}

func (p cubicPoly) eval(t float32) float32 {
	return p.c0 + t*(p.c1+t*(p.c2+t*p.c3))
}

func (p cubicPoly) evalDerivative(t float32) float32 {
	return p.c1 + t*(2*p.c2+t*3*p.c3)
}

// extrema returns the parameters in (0, 1) at which the polynomial has a
// local extremum, i.e. the interior roots of the derivative.
func (p cubicPoly) extrema() ([2]float32, int) {
	var out [2]float32
	var outN int
	roots, n := SolveQuadratic(p.c1, 2*p.c2, 3*p.c3)
	for _, t := range roots[:n] {
		if t > 0 && t < 1 {
			out[outN] = t
			outN++
		}
	}
	return out, outN
}

// rangeOn01 returns the minimum and maximum of the polynomial over [0, 1],
// computed exactly from the endpoints and the interior extrema.
func (p cubicPoly) rangeOn01() (lo, hi float32) {
	lo = math32.Min(p.eval(0), p.eval(1))
	hi = math32.Max(p.eval(0), p.eval(1))
	ex, n := p.extrema()
	for _, t := range ex[:n] {
		v := p.eval(t)
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	return lo, hi
}

// cubic is a curve in power form, one polynomial per position component
// plus one for the radius.
type cubic struct {
	x, y, z, r cubicPoly
}

func (c cubic) eval(t float32) ControlPoint {
	return ControlPoint{
		Position: Vec3{c.x.eval(t), c.y.eval(t), c.z.eval(t)},
		Radius:   c.r.eval(t),
	}
}

func (c cubic) evalDerivative(t float32) Vec3 {
	return Vec3{c.x.evalDerivative(t), c.y.evalDerivative(t), c.z.evalDerivative(t)}
}

// accurateBounds returns the exact bounds of the curve body over [0, 1],
// expanded by the maximum radius over [0, 1].
func (c cubic) accurateBounds() Box3 {
	xlo, xhi := c.x.rangeOn01()
	ylo, yhi := c.y.rangeOn01()
	zlo, zhi := c.z.rangeOn01()
	_, rhi := c.r.rangeOn01()
	b := Box3{Min: Vec3{xlo, ylo, zlo}, Max: Vec3{xhi, yhi, zhi}}
	return b.Expand(math32.Max(rhi, 0))
}

// tessellatedBounds bounds the curve by rate uniform line segments.
func tessellatedBounds(c SpaceCurve, rate int) Box3 {
	if rate < 1 {
		rate = 1
	}
	bounds := EmptyBox3()
	prev := c.Eval(0)
	for k := 1; k <= rate; k++ {
		next := c.Eval(float32(k) / float32(rate))
		seg := NewBox3FromPoints(prev.Position, next.Position)
		seg = seg.Expand(math32.Max(math32.Max(prev.Radius, next.Radius), 0))
		bounds = bounds.Union(seg)
		prev = next
	}
	return bounds
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of t for which c0 + c1·t + c2·t² = 0.
//
// This function tries to be quite numerically robust. If the equation is
// nearly linear, it will return the root ignoring the quadratic term; the
// other root might be out of representable range. In the degenerate case
// where all coefficients are zero, so that all values of t satisfy the
// equation, a single 0 is returned.
func SolveQuadratic(c0, c1, c2 float32) ([2]float32, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if !isFinite(sc0) || !isFinite(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if isFinite(root) {
			return [2]float32{root}, 1
		} else if c0 == 0 && c1 == 0 {
			// Degenerate case
			return [2]float32{0}, 1
		} else {
			return [2]float32{}, 0
		}
	}
	arg := sc1*sc1 - 4*sc0
	var root1 float32
	if math32.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root using
		// sc1·t + t² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float32{}, 0
		} else if arg == 0 {
			return [2]float32{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math32.Copysign(math32.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if isFinite(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float32{root1, root2}, 2
		}
		return [2]float32{root2, root1}, 2
	}
	return [2]float32{root1}, 1
}
