package curve3

import "github.com/chewxy/math32"

// Polyline is the linear basis: four control points traversed as a uniform
// three-span polyline. It exists so that linear strand geometry flows
// through the same gather/validity/bounding pipeline as the cubic bases.
type Polyline struct {
	P0 ControlPoint
	P1 ControlPoint
	P2 ControlPoint
	P3 ControlPoint
}

var _ SpaceCurve = Polyline{}

func (l Polyline) points() [4]ControlPoint {
	return [4]ControlPoint{l.P0, l.P1, l.P2, l.P3}
}

// span maps t ∈ [0, 1] to a span index in {0, 1, 2} and the local
// parameter within that span.
func (l Polyline) span(t float32) (int, float32) {
	s := t * 3
	i := int(math32.Floor(s))
	if i < 0 {
		i = 0
	}
	if i > 2 {
		i = 2
	}
	return i, s - float32(i)
}

// Eval implements [SpaceCurve].
func (l Polyline) Eval(t float32) ControlPoint {
	p := l.points()
	i, f := l.span(t)
	return p[i].Lerp(p[i+1], f)
}

// EvalDerivative implements [SpaceCurve]. The derivative is piecewise
// constant; at the two interior joints the span to the right is used.
func (l Polyline) EvalDerivative(t float32) Vec3 {
	p := l.points()
	i, _ := l.span(t)
	return p[i+1].Position.Sub(p[i].Position).Mul(3)
}

// Start implements [SpaceCurve].
func (l Polyline) Start() ControlPoint {
	return l.P0
}

// End implements [SpaceCurve].
func (l Polyline) End() ControlPoint {
	return l.P3
}

// AccurateBounds implements [SpaceCurve]. For a polyline the point hull
// expanded by the largest radius is already exact.
func (l Polyline) AccurateBounds() Box3 {
	b := EmptyBox3()
	r := float32(0)
	for _, p := range l.points() {
		b = b.UnionPoint(p.Position)
		r = math32.Max(r, p.Radius)
	}
	return b.Expand(r)
}

// TessellatedBounds implements [SpaceCurve].
func (l Polyline) TessellatedBounds(rate int) Box3 {
	return tessellatedBounds(l, rate)
}

// IsFinite reports whether all four control points are finite and not NaN.
func (l Polyline) IsFinite() bool {
	return l.P0.IsFinite() && l.P1.IsFinite() && l.P2.IsFinite() && l.P3.IsFinite()
}
