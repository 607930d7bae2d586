package curve3

// degenerateTolerance is the squared-length threshold below which a chord
// or derived axis is treated as zero when constructing frames.
const degenerateTolerance = 1e-18

// AlignedSpace returns an orthonormal frame aligned with curve i at the
// default timestep: the z axis follows the chord from the curve's start to
// its end, and the y axis is derived from the cross product of the chord
// and the curve's initial tangent. Bounding a long, diagonally oriented
// curve in this frame (via [Geometry.BoundsTransformed]) is much tighter
// than in world axes.
//
// Degenerate curves get deterministic fallbacks, never an error: if the
// chord is (near) zero length, the z axis defaults to (0, 0, 1); if chord
// and tangent are (near) parallel, an arbitrary frame about the z axis is
// returned.
func (g *Geometry) AlignedSpace(i int) LinearSpace {
	axisZ := Vec3{Z: 1}
	axisY := Vec3{Y: 1}

	c := g.Curve(i, 0)
	p0 := c.Start().Position
	p3 := c.End().Position
	d0 := c.EvalDerivative(0)
	chord := p3.Sub(p0)
	if chord.Hypot2() > degenerateTolerance {
		axisZ = chord.Normalize()
		axisY = axisZ.Cross(d0)
	}

	if axisY.Hypot2() > degenerateTolerance {
		axisY = axisY.Normalize()
		axisX := axisY.Cross(axisZ).Normalize()
		return LinearSpace{VX: axisX, VY: axisY, VZ: axisZ}
	}
	return Frame(axisZ)
}

// AlignedSpaceTime returns an orthonormal frame for curve i over a time
// window, computed from the single timestep nearest the midpoint of the
// touched segment range. A per-instant frame would track the motion more
// closely; the midpoint approximation is deliberate, since the frame only
// steers bounding tightness, never correctness.
func (g *Geometry) AlignedSpaceTime(i int, w TimeRange) LinearSpace {
	axis := Vec3{Z: 1}

	t := 0
	if n := g.NumTimeSegments(); n > 0 {
		lo, hi := TimeSegmentRange(w, n)
		t = (lo + hi + 1) / 2
	}
	c := g.Curve(i, t)
	chord := c.End().Position.Sub(c.Start().Position)
	if chord.Hypot2() > degenerateTolerance {
		axis = chord.Normalize()
	}
	return Frame(axis)
}

// Direction returns the chord vector of curve i at the default timestep,
// end point minus start point. Downstream heuristics use it as a
// representative orientation when a full frame is not needed.
func (g *Geometry) Direction(i int) Vec3 {
	return g.DirectionAt(i, 0)
}

// DirectionAt returns the chord vector of curve i at the given timestep.
func (g *Geometry) DirectionAt(i, timestep int) Vec3 {
	c := g.Curve(i, timestep)
	return c.End().Position.Sub(c.Start().Position)
}
