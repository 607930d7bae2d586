package curve3

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func assertOrthonormal(t *testing.T, m LinearSpace) {
	t.Helper()
	for _, axis := range []Vec3{m.VX, m.VY, m.VZ} {
		if !axis.IsFinite() {
			t.Fatalf("frame axis %v is not finite", axis)
		}
		if d := math32.Abs(axis.Hypot() - 1); d > 1e-4 {
			t.Errorf("frame axis %v has length %g", axis, axis.Hypot())
		}
	}
	if d := math32.Abs(m.VX.Dot(m.VY)); d > 1e-4 {
		t.Errorf("x and y axes not perpendicular: %g", d)
	}
	if d := math32.Abs(m.VY.Dot(m.VZ)); d > 1e-4 {
		t.Errorf("y and z axes not perpendicular: %g", d)
	}
	if d := math32.Abs(m.VZ.Dot(m.VX)); d > 1e-4 {
		t.Errorf("z and x axes not perpendicular: %g", d)
	}
}

func TestFrame(t *testing.T) {
	for _, z := range []Vec3{
		{Z: 1}, {Z: -1}, {X: 1}, {Y: 1},
		V3(1, 1, 1).Normalize(),
		V3(-0.3, 0.8, 0.1).Normalize(),
	} {
		m := Frame(z)
		assertOrthonormal(t, m)
		diff(t, z, m.VZ)
	}
}

func TestAlignedSpace(t *testing.T) {
	// a bent strand along the x axis: the chord gives the primary axis
	vs := []ControlPoint{
		CP(0, 0, 0, 0.1),
		CP(1, 1, 0, 0.1),
		CP(2, 1, 0, 0.1),
		CP(3, 0, 0, 0.1),
	}
	g := buildGeometry(t, BasisBezier, SubtypeRound, []uint32{0}, vs)

	m := g.AlignedSpace(0)
	assertOrthonormal(t, m)
	diff(t, V3(1, 0, 0), m.VZ, cmpopts.EquateApprox(0, 1e-5))
}

func TestAlignedSpaceDegenerateChord(t *testing.T) {
	// all control points coincident: primary axis falls back to z
	p := CP(2, 2, 2, 0.5)
	g := buildGeometry(t, BasisBezier, SubtypeRound, []uint32{0},
		[]ControlPoint{p, p, p, p})

	m := g.AlignedSpace(0)
	assertOrthonormal(t, m)
	diff(t, V3(0, 0, 1), m.VZ)
}

func TestAlignedSpaceStraightStrand(t *testing.T) {
	// chord parallel to the tangent: the cross product degenerates and an
	// arbitrary frame about the chord is used
	g := buildGeometry(t, BasisBezier, SubtypeRound, []uint32{0}, straightStrand(0, 0.1))

	m := g.AlignedSpace(0)
	assertOrthonormal(t, m)
	diff(t, V3(1, 0, 0), m.VZ, cmpopts.EquateApprox(0, 1e-5))
}

func TestAlignedSpaceTime(t *testing.T) {
	t0 := straightStrand(0, 0.1)
	t1 := []ControlPoint{CP(0, 0, 0, 0.1), CP(0, 1, 0, 0.1), CP(0, 2, 0, 0.1), CP(0, 3, 0, 0.1)}
	t2 := t1
	g := buildGeometry(t, BasisBezier, SubtypeRound, []uint32{0}, t0, t1, t2)

	// the midpoint timestep of the touched range decides the chord
	m := g.AlignedSpaceTime(0, FullTimeRange)
	assertOrthonormal(t, m)
	diff(t, V3(0, 1, 0), m.VZ, cmpopts.EquateApprox(0, 1e-5))

	m = g.AlignedSpaceTime(0, TimeRange{0, 0})
	assertOrthonormal(t, m)
	diff(t, V3(1, 0, 0), m.VZ, cmpopts.EquateApprox(0, 1e-5))
}

func TestAlignedSpaceTimeStatic(t *testing.T) {
	g := buildGeometry(t, BasisBezier, SubtypeRound, []uint32{0}, straightStrand(0, 0.1))
	m := g.AlignedSpaceTime(0, FullTimeRange)
	assertOrthonormal(t, m)
}

func TestDirection(t *testing.T) {
	t0 := straightStrand(0, 0.1)
	t1 := straightStrand(2, 0.1)
	g := buildGeometry(t, BasisBezier, SubtypeRound, []uint32{0}, t0, t1)

	assert.Equal(t, V3(3, 0, 0), g.Direction(0))
	assert.Equal(t, V3(3, 0, 0), g.DirectionAt(0, 1))
}
