package curve3

// Bezier is a cubic Bézier curve in 3D space with per-point radii.
type Bezier struct {
	P0 ControlPoint
	P1 ControlPoint
	P2 ControlPoint
	P3 ControlPoint
}

var _ SpaceCurve = Bezier{}

// bezierPoly converts one component of the Bézier control polygon to power
// form.
func bezierPoly(p0, p1, p2, p3 float32) cubicPoly {
	return cubicPoly{
		c0: p0,
		c1: 3 * (p1 - p0),
		c2: 3 * (p0 - 2*p1 + p2),
		c3: -p0 + 3*p1 - 3*p2 + p3,
	}
}

func (b Bezier) poly() cubic {
	return componentPolys(bezierPoly, b.P0, b.P1, b.P2, b.P3)
}

// Eval implements [SpaceCurve].
func (b Bezier) Eval(t float32) ControlPoint {
	return b.poly().eval(t)
}

// EvalDerivative implements [SpaceCurve].
func (b Bezier) EvalDerivative(t float32) Vec3 {
	return b.poly().evalDerivative(t)
}

// Start implements [SpaceCurve]. A Bézier curve interpolates its first
// control point.
func (b Bezier) Start() ControlPoint {
	return b.P0
}

// End implements [SpaceCurve]. A Bézier curve interpolates its last
// control point.
func (b Bezier) End() ControlPoint {
	return b.P3
}

// AccurateBounds implements [SpaceCurve]. The position bounds are exact,
// computed from the per-axis derivative extrema; the box is then expanded
// by the maximum radius over the curve, itself found exactly from the
// radius cubic's extrema.
func (b Bezier) AccurateBounds() Box3 {
	return b.poly().accurateBounds()
}

// TessellatedBounds implements [SpaceCurve].
func (b Bezier) TessellatedBounds(rate int) Box3 {
	return tessellatedBounds(b, rate)
}

// IsFinite reports whether all four control points are finite and not NaN.
func (b Bezier) IsFinite() bool {
	return b.P0.IsFinite() && b.P1.IsFinite() && b.P2.IsFinite() && b.P3.IsFinite()
}

// componentPolys applies a per-component basis conversion to the x, y, z,
// and radius components of four control points.
func componentPolys(basis func(p0, p1, p2, p3 float32) cubicPoly, p0, p1, p2, p3 ControlPoint) cubic {
	return cubic{
		x: basis(p0.Position.X, p1.Position.X, p2.Position.X, p3.Position.X),
		y: basis(p0.Position.Y, p1.Position.Y, p2.Position.Y, p3.Position.Y),
		z: basis(p0.Position.Z, p1.Position.Z, p2.Position.Z, p3.Position.Z),
		r: basis(p0.Radius, p1.Radius, p2.Radius, p3.Radius),
	}
}
