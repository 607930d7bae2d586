package curve3

// BSpline is a single span of a uniform cubic B-spline in 3D space with
// per-point radii. Unlike [Bezier], a B-spline span does not interpolate
// its outer control points: the curve starts at (P0 + 4·P1 + P2)/6 and ends
// at (P1 + 4·P2 + P3)/6. Adjacent spans sharing three control points join
// with C² continuity, which is why strand geometry is commonly authored in
// this basis.
type BSpline struct {
	P0 ControlPoint
	P1 ControlPoint
	P2 ControlPoint
	P3 ControlPoint
}

var _ SpaceCurve = BSpline{}

// bsplinePoly converts one component of the B-spline control polygon to
// power form, using the uniform cubic B-spline basis matrix.
func bsplinePoly(p0, p1, p2, p3 float32) cubicPoly {
	return cubicPoly{
		c0: (p0 + 4*p1 + p2) * (1.0 / 6.0),
		c1: (p2 - p0) * 0.5,
		c2: (p0 - 2*p1 + p2) * 0.5,
		c3: (-p0 + 3*p1 - 3*p2 + p3) * (1.0 / 6.0),
	}
}

func (b BSpline) poly() cubic {
	return componentPolys(bsplinePoly, b.P0, b.P1, b.P2, b.P3)
}

// Eval implements [SpaceCurve].
func (b BSpline) Eval(t float32) ControlPoint {
	return b.poly().eval(t)
}

// EvalDerivative implements [SpaceCurve].
func (b BSpline) EvalDerivative(t float32) Vec3 {
	return b.poly().evalDerivative(t)
}

// Start implements [SpaceCurve].
func (b BSpline) Start() ControlPoint {
	return b.Eval(0)
}

// End implements [SpaceCurve].
func (b BSpline) End() ControlPoint {
	return b.Eval(1)
}

// AccurateBounds implements [SpaceCurve]. As for [Bezier.AccurateBounds],
// the bounds are exact for the curve body and expanded by the exact
// maximum radius; they are generally much tighter than the control-point
// convex hull that the B-spline basis would also permit.
func (b BSpline) AccurateBounds() Box3 {
	return b.poly().accurateBounds()
}

// TessellatedBounds implements [SpaceCurve].
func (b BSpline) TessellatedBounds(rate int) Box3 {
	return tessellatedBounds(b, rate)
}

// IsFinite reports whether all four control points are finite and not NaN.
func (b BSpline) IsFinite() bool {
	return b.P0.IsFinite() && b.P1.IsFinite() && b.P2.IsFinite() && b.P3.IsFinite()
}

// ToBezier returns the cubic Bézier curve tracing the same span. The
// conversion is exact: both curves evaluate to the same points for all t.
func (b BSpline) ToBezier() Bezier {
	blend := func(p, q ControlPoint, wp, wq float32) ControlPoint {
		s := 1.0 / (wp + wq)
		return ControlPoint{
			Position: p.Position.Mul(wp).Add(q.Position.Mul(wq)).Mul(s),
			Radius:   (p.Radius*wp + q.Radius*wq) * s,
		}
	}
	return Bezier{
		P0: b.Start(),
		P1: blend(b.P1, b.P2, 2, 1),
		P2: blend(b.P1, b.P2, 1, 2),
		P3: b.End(),
	}
}
