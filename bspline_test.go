package curve3

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBSplineEndpoints(t *testing.T) {
	b := BSpline{
		CP(0, 0, 0, 0.1),
		CP(1, 2, 0, 0.2),
		CP(2, 2, 1, 0.3),
		CP(3, 0, 1, 0.4),
	}

	// a B-spline span starts at (P0 + 4·P1 + P2)/6 and ends at
	// (P1 + 4·P2 + P3)/6
	wantStart := ControlPoint{
		Position: b.P0.Position.Add(b.P1.Position.Mul(4)).Add(b.P2.Position).Mul(1.0 / 6.0),
		Radius:   (b.P0.Radius + 4*b.P1.Radius + b.P2.Radius) / 6,
	}
	wantEnd := ControlPoint{
		Position: b.P1.Position.Add(b.P2.Position.Mul(4)).Add(b.P3.Position).Mul(1.0 / 6.0),
		Radius:   (b.P1.Radius + 4*b.P2.Radius + b.P3.Radius) / 6,
	}
	diff(t, wantStart, b.Start(), cmpopts.EquateApprox(0, 1e-5))
	diff(t, wantEnd, b.End(), cmpopts.EquateApprox(0, 1e-5))
}

func TestBSplineDeriv(t *testing.T) {
	b := BSpline{
		CP(0, 0, 0, 0.1),
		CP(1, 2, 0, 0.2),
		CP(2, 2, 1, 0.3),
		CP(3, 0, 1, 0.4),
	}

	const n = 16
	const delta = 1.0 / 1024
	for i := 0; i < n; i++ {
		ts := float32(i) / float32(n)
		p := b.Eval(ts)
		p1 := b.Eval(ts + delta)
		dApprox := p1.Position.Sub(p.Position).Mul(1.0 / delta)
		d := b.EvalDerivative(ts)
		if l := d.Sub(dApprox).Hypot(); l >= 0.02 {
			t.Errorf("at t=%g got difference of %g, want at most 0.02", ts, l)
		}
	}
}

func TestBSplineToBezier(t *testing.T) {
	b := BSpline{
		CP(0, 0, 0, 0.1),
		CP(1, 2, 0, 0.2),
		CP(2, 2, 1, 0.3),
		CP(3, 0, 1, 0.4),
	}
	c := b.ToBezier()

	const n = 32
	for i := 0; i < n+1; i++ {
		ts := float32(i) / float32(n)
		diff(t, b.Eval(ts), c.Eval(ts), cmpopts.EquateApprox(1e-5, 1e-5))
	}
}

func TestBSplineAccurateBounds(t *testing.T) {
	b := BSpline{
		CP(0, 0, 0, 0.1),
		CP(1, 2, 0, 0.4),
		CP(2, 2, 1, 0.4),
		CP(3, 0, 1, 0.1),
	}
	bounds := b.AccurateBounds()

	const n = 64
	for i := 0; i < n+1; i++ {
		ts := float32(i) / float32(n)
		p := b.Eval(ts)
		for _, axis := range []Vec3{{X: 1}, {Y: 1}, {Z: 1}} {
			if !bounds.Expand(1e-4).Contains(p.Position.Add(axis.Mul(p.Radius))) {
				t.Fatalf("tube surface at t=%g escapes bounds %v", ts, bounds)
			}
		}
	}

	// the exact bounds are tighter than the control-point hull the basis
	// would also permit
	hull := EmptyBox3()
	for _, p := range []ControlPoint{b.P0, b.P1, b.P2, b.P3} {
		hull = hull.UnionPoint(p.Position)
	}
	hull = hull.Expand(0.4)
	if !hull.Expand(1e-4).ContainsBox(bounds) {
		t.Errorf("exact bounds %v exceed the control hull %v", bounds, hull)
	}
	if containsApprox(bounds, hull, 1e-4) {
		t.Errorf("exact bounds %v should be strictly tighter than the control hull %v", bounds, hull)
	}
}
