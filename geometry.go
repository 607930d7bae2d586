package curve3

import (
	"fmt"

	"go.uber.org/zap"
)

// Geometry is a collection of curve primitives sharing one basis, one
// subtype, and one set of buffers. Each primitive is defined by an index
// into the vertex arrays naming the first of its four consecutive control
// points.
//
// A geometry moves through two phases. Before a commit, buffers are bound
// with the Set* methods; [Geometry.Commit] then materializes densely packed
// native arrays from the strided views. After a commit the native arrays
// are immutable and all queries are pure and safe to call concurrently for
// any primitive ranges. Rebinding buffers and committing again replaces the
// native arrays wholesale; the owner must not overlap a commit with
// in-flight queries.
type Geometry struct {
	id               uint32
	basis            Basis
	subtype          Subtype
	tessellationRate int
	numTimeSteps     int

	curves   Buffer
	vertices []Buffer
	flags    Buffer
	attribs  []Buffer

	// Native arrays, replaced wholesale by Commit.
	nativeCurves    []uint32
	nativeVertices  [][]ControlPoint
	nativeVertices0 []ControlPoint // alias of nativeVertices[0] for the single-timestep fast path
	nativeFlags     []byte
}

// NewGeometry returns an empty geometry with the given identifier, basis,
// and subtype. The identifier is stamped into every primitive reference
// the geometry emits (see [PrimRef]); the builder uses it to find the way
// back from a reference to its geometry.
//
// The geometry starts with one timestep and a tessellation rate of 4.
func NewGeometry(id uint32, basis Basis, subtype Subtype) *Geometry {
	return &Geometry{
		id:               id,
		basis:            basis,
		subtype:          subtype,
		tessellationRate: 4,
		numTimeSteps:     1,
		vertices:         make([]Buffer, 1),
	}
}

// GeomID returns the geometry identifier.
func (g *Geometry) GeomID() uint32 { return g.id }

// Basis returns the curve basis fixed at construction.
func (g *Geometry) Basis() Basis { return g.basis }

// Subtype returns the render subtype fixed at construction.
func (g *Geometry) Subtype() Subtype { return g.subtype }

// TessellationRate returns the number of line segments used to bound flat
// curves.
func (g *Geometry) TessellationRate() int { return g.tessellationRate }

// SetTessellationRate sets the number of line segments used to bound flat
// curves. Rates below 1 are treated as 1. The rate affects only the
// tightness of flat-curve bounds, never their correctness.
func (g *Geometry) SetTessellationRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	g.tessellationRate = rate
}

// NumTimeSteps returns the number of animation timesteps.
func (g *Geometry) NumTimeSteps() int { return g.numTimeSteps }

// NumTimeSegments returns the number of linear time segments between the
// timesteps. A static geometry has zero segments.
func (g *Geometry) NumTimeSegments() int { return g.numTimeSteps - 1 }

// SetNumTimeSteps sets the number of animation timesteps. Vertex buffers
// already bound to retained timesteps stay bound; the change takes effect
// at the next commit.
func (g *Geometry) SetNumTimeSteps(n int) error {
	if n < 1 {
		return fmt.Errorf("curve3: geometry needs at least one timestep, got %d", n)
	}
	vertices := make([]Buffer, n)
	copy(vertices, g.vertices)
	g.vertices = vertices
	g.numTimeSteps = n
	return nil
}

// SetCurveBuffer binds the topology buffer: one uint32 per curve, the
// index of the curve's first control point.
func (g *Geometry) SetCurveBuffer(b Buffer) error {
	if b.Format != FormatUint32 {
		return fmt.Errorf("curve3: curve buffer must be %v, got %v", FormatUint32, b.Format)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	g.curves = b
	return nil
}

// SetVertexBuffer binds the vertex buffer for one timestep: one float4
// (x, y, z, radius) per control point.
func (g *Geometry) SetVertexBuffer(timestep int, b Buffer) error {
	if timestep < 0 || timestep >= g.numTimeSteps {
		return fmt.Errorf("curve3: timestep %d out of range [0, %d)", timestep, g.numTimeSteps)
	}
	if b.Format != FormatFloat4 {
		return fmt.Errorf("curve3: vertex buffer must be %v, got %v", FormatFloat4, b.Format)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	g.vertices[timestep] = b
	return nil
}

// SetFlagBuffer binds the optional per-segment flag buffer: one byte per
// curve whose two low bits mark the start and end of a connected strand.
// The flags are pass-through data for downstream continuity logic; nothing
// in this package computes with them.
func (g *Geometry) SetFlagBuffer(b Buffer) error {
	if b.Format != FormatUint8 {
		return fmt.Errorf("curve3: flag buffer must be %v, got %v", FormatUint8, b.Format)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	g.flags = b
	return nil
}

// SetVertexAttributeCount sets the number of opaque per-vertex attribute
// slots carried alongside the geometry for later interpolation.
func (g *Geometry) SetVertexAttributeCount(n int) {
	attribs := make([]Buffer, n)
	copy(attribs, g.attribs)
	g.attribs = attribs
}

// SetAttributeBuffer binds an opaque attribute buffer. Attribute data is
// carried, never interpreted: bounding has no use for it.
func (g *Geometry) SetAttributeBuffer(slot int, b Buffer) error {
	if slot < 0 || slot >= len(g.attribs) {
		return fmt.Errorf("curve3: attribute slot %d out of range [0, %d)", slot, len(g.attribs))
	}
	if err := b.Validate(); err != nil {
		return err
	}
	g.attribs[slot] = b
	return nil
}

// AttributeBuffer returns the attribute buffer bound to the given slot.
func (g *Geometry) AttributeBuffer(slot int) Buffer {
	return g.attribs[slot]
}

// Verify checks the bound buffers for structural problems: a missing
// topology or vertex buffer, or vertex buffers of unequal length across
// timesteps. Out-of-range curve indices are not an error (such curves are
// stored but excluded from bounding), but their count is reported through
// the package logger.
func (g *Geometry) Verify() error {
	if !g.curves.IsBound() {
		return fmt.Errorf("curve3: no curve buffer bound")
	}
	for t, vb := range g.vertices {
		if !vb.IsBound() {
			return fmt.Errorf("curve3: no vertex buffer bound for timestep %d", t)
		}
		if vb.Count != g.vertices[0].Count {
			return fmt.Errorf("curve3: vertex buffer for timestep %d has %d vertices, timestep 0 has %d",
				t, vb.Count, g.vertices[0].Count)
		}
	}
	if g.flags.IsBound() && g.flags.Count < g.curves.Count {
		return fmt.Errorf("curve3: flag buffer has %d entries for %d curves", g.flags.Count, g.curves.Count)
	}
	outOfRange := 0
	for i := 0; i < g.curves.Count; i++ {
		if int(g.curves.uint32At(i))+3 >= g.vertices[0].Count {
			outOfRange++
		}
	}
	if outOfRange > 0 {
		Logger().Warn("geometry has curves with out-of-range topology; they will be excluded from bounding",
			zap.Uint32("geom", g.id),
			zap.Int("curves", outOfRange))
	}
	return nil
}

// Commit verifies the bound buffers and materializes the native arrays all
// queries operate on: densely packed copies of the topology, the vertices
// of every timestep, and the flags, independent of the external buffers'
// strides. The external buffers are not referenced after Commit returns.
func (g *Geometry) Commit() error {
	if err := g.Verify(); err != nil {
		return err
	}

	curves := make([]uint32, g.curves.Count)
	for i := range curves {
		curves[i] = g.curves.uint32At(i)
	}

	vertices := make([][]ControlPoint, g.numTimeSteps)
	for t, vb := range g.vertices {
		pts := make([]ControlPoint, vb.Count)
		for i := range pts {
			pts[i] = vb.controlPointAt(i)
		}
		vertices[t] = pts
	}

	var flags []byte
	if g.flags.IsBound() {
		flags = make([]byte, g.curves.Count)
		for i := range flags {
			flags[i] = g.flags.byteAt(i)
		}
	}

	g.nativeCurves = curves
	g.nativeVertices = vertices
	g.nativeVertices0 = vertices[0]
	g.nativeFlags = flags

	Logger().Debug("committed curve geometry",
		zap.Uint32("geom", g.id),
		zap.Stringer("basis", g.basis),
		zap.Stringer("subtype", g.subtype),
		zap.Int("curves", len(curves)),
		zap.Int("vertices", len(vertices[0])),
		zap.Int("timesteps", g.numTimeSteps))
	return nil
}

// NumCurves returns the number of curve primitives.
func (g *Geometry) NumCurves() int {
	return len(g.nativeCurves)
}

// NumVertices returns the number of control points at the given timestep.
func (g *Geometry) NumVertices(timestep int) int {
	return len(g.nativeVertices[timestep])
}

// NumNativeVertices returns the number of control points in the native
// arrays. All timesteps have the same count.
func (g *Geometry) NumNativeVertices() int {
	return len(g.nativeVertices0)
}

// CurveIndex returns the index of curve i's first control point.
func (g *Geometry) CurveIndex(i int) uint32 {
	return g.nativeCurves[i]
}

// StartEndBitMask returns curve i's strand-continuity flags, shifted into
// the two high bits of a uint32 the way downstream shading consumes them.
// Geometries without a flag buffer report 0.
func (g *Geometry) StartEndBitMask(i int) uint32 {
	if g.nativeFlags == nil {
		return 0
	}
	return uint32(g.nativeFlags[i]&0x3) << 30
}

// Vertex returns the control point at the given vertex index at timestep 0.
func (g *Geometry) Vertex(i int) ControlPoint {
	return g.nativeVertices0[i]
}

// VertexAt returns the control point at the given vertex index and
// timestep.
func (g *Geometry) VertexAt(i, timestep int) ControlPoint {
	return g.nativeVertices[timestep][i]
}

// Radius returns the radius at the given vertex index at timestep 0.
func (g *Geometry) Radius(i int) float32 {
	return g.nativeVertices0[i].Radius
}

// RadiusAt returns the radius at the given vertex index and timestep.
func (g *Geometry) RadiusAt(i, timestep int) float32 {
	return g.nativeVertices[timestep][i].Radius
}

// VertexTime returns the control point at the given vertex index at a
// continuous time u ∈ [0, 1], blended componentwise between the two
// bracketing timesteps.
func (g *Geometry) VertexTime(i int, u float32) ControlPoint {
	if g.numTimeSteps == 1 {
		return g.nativeVertices0[i]
	}
	itime, f := TimeSegment(u, g.NumTimeSegments())
	return g.nativeVertices[itime][i].Lerp(g.nativeVertices[itime+1][i], f)
}

// Gather returns the four control points of curve i at a discrete
// timestep. The curve's topology must be in range; use [Geometry.Valid]
// first when that is not known.
func (g *Geometry) Gather(i, timestep int) (p0, p1, p2, p3 ControlPoint) {
	idx := int(g.nativeCurves[i])
	vs := g.nativeVertices[timestep]
	return vs[idx], vs[idx+1], vs[idx+2], vs[idx+3]
}

// GatherTime returns the four control points of curve i at a continuous
// time u ∈ [0, 1]. The points of the two bracketing timesteps, radii
// included, are blended componentwise by the fractional position within
// the time segment. Blending before bounding is what keeps bounds of
// time-interpolated curves conservative.
func (g *Geometry) GatherTime(i int, u float32) (p0, p1, p2, p3 ControlPoint) {
	if g.numTimeSteps == 1 {
		return g.Gather(i, 0)
	}
	itime, f := TimeSegment(u, g.NumTimeSegments())
	a0, a1, a2, a3 := g.Gather(i, itime)
	b0, b1, b2, b3 := g.Gather(i, itime+1)
	return a0.Lerp(b0, f), a1.Lerp(b1, f), a2.Lerp(b2, f), a3.Lerp(b3, f)
}

// Curve returns the [SpaceCurve] interpretation of curve i at a discrete
// timestep, under the geometry's basis.
func (g *Geometry) Curve(i, timestep int) SpaceCurve {
	p0, p1, p2, p3 := g.Gather(i, timestep)
	return CurveOf(g.basis, p0, p1, p2, p3)
}

// CurveTime returns the [SpaceCurve] interpretation of curve i at a
// continuous time u ∈ [0, 1].
func (g *Geometry) CurveTime(i int, u float32) SpaceCurve {
	p0, p1, p2, p3 := g.GatherTime(i, u)
	return CurveOf(g.basis, p0, p1, p2, p3)
}
