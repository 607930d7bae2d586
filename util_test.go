package curve3

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func packUint32s(vs []uint32) []byte {
	out := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out
}

func packControlPoints(ps []ControlPoint) []byte {
	out := make([]byte, 16*len(ps))
	for i, p := range ps {
		binary.LittleEndian.PutUint32(out[16*i+0:], math.Float32bits(p.Position.X))
		binary.LittleEndian.PutUint32(out[16*i+4:], math.Float32bits(p.Position.Y))
		binary.LittleEndian.PutUint32(out[16*i+8:], math.Float32bits(p.Position.Z))
		binary.LittleEndian.PutUint32(out[16*i+12:], math.Float32bits(p.Radius))
	}
	return out
}

// buildGeometry binds naturally strided buffers for the given topology and
// per-timestep vertices and commits.
func buildGeometry(t *testing.T, basis Basis, subtype Subtype, indices []uint32, vertices ...[]ControlPoint) *Geometry {
	t.Helper()
	g := NewGeometry(7, basis, subtype)
	if len(vertices) > 1 {
		if err := g.SetNumTimeSteps(len(vertices)); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.SetCurveBuffer(NewBuffer(packUint32s(indices), FormatUint32, len(indices))); err != nil {
		t.Fatal(err)
	}
	for ts, vs := range vertices {
		if err := g.SetVertexBuffer(ts, NewBuffer(packControlPoints(vs), FormatFloat4, len(vs))); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Commit(); err != nil {
		t.Fatal(err)
	}
	return g
}

// containsApprox reports whether b contains o up to a small tolerance on
// each face.
func containsApprox(b, o Box3, eps float32) bool {
	return b.Expand(eps).ContainsBox(o)
}

func nan32() float32 {
	return float32(math.NaN())
}

func inf32() float32 {
	return float32(math.Inf(1))
}
