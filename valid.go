package curve3

// Valid reports whether curve i is usable at the given timestep: its
// topology is in range, its four positions are finite, and its four radii
// are finite and non-negative.
func (g *Geometry) Valid(i, timestep int) bool {
	return g.ValidRange(i, timestep, timestep)
}

// ValidRange reports whether curve i is usable at every timestep in the
// inclusive range [lo, hi]. Motion-blurred bounds interpolate between
// consecutive timesteps, so both ends of every touched segment must be
// sound.
func (g *Geometry) ValidRange(i, lo, hi int) bool {
	idx := int(g.nativeCurves[i])
	if idx+3 >= len(g.nativeVertices0) {
		return false
	}

	for t := lo; t <= hi; t++ {
		vs := g.nativeVertices[t]
		for k := 0; k < 4; k++ {
			if !isFinite(vs[idx+k].Radius) || vs[idx+k].Radius < 0 {
				return false
			}
		}
		for k := 0; k < 4; k++ {
			if !vs[idx+k].Position.IsFinite() {
				return false
			}
		}
	}
	return true
}

// BuildBounds computes the bounds used for building the primary spatial
// index: curve i's static bounds at timestep 0, provided the curve passes
// the relaxed build check over all timesteps.
//
// The build check requires in-range topology and finite positions and
// radii, but deliberately does not reject negative radii the way
// [Geometry.Valid] does. The asymmetry is intentional and load-bearing:
// coarse build bounds tolerate radii that dip negative at some timestep,
// while per-timestep validity does not.
func (g *Geometry) BuildBounds(i int) (Box3, bool) {
	idx := int(g.nativeCurves[i])
	if idx+3 >= len(g.nativeVertices0) {
		return Box3{}, false
	}

	for t := 0; t < g.numTimeSteps; t++ {
		vs := g.nativeVertices[t]
		for k := 0; k < 4; k++ {
			if !isFinite(vs[idx+k].Radius) {
				return Box3{}, false
			}
		}
		for k := 0; k < 4; k++ {
			if !vs[idx+k].Position.IsFinite() {
				return Box3{}, false
			}
		}
	}

	return g.Bounds(i, 0), true
}

// BuildPrim returns curve i's control points averaged across the two
// timesteps of segment itime, for building a coarser secondary index over
// a time segment. Unlike [Geometry.BuildBounds] this applies the strict
// validity rules, including the radius sign test, at both timesteps.
func (g *Geometry) BuildPrim(i, itime int) ([4]ControlPoint, bool) {
	idx := int(g.nativeCurves[i])
	if idx+3 >= len(g.nativeVertices0) {
		return [4]ControlPoint{}, false
	}

	va := g.nativeVertices[itime]
	vb := g.nativeVertices[itime+1]
	var out [4]ControlPoint
	for k := 0; k < 4; k++ {
		a, b := va[idx+k], vb[idx+k]
		if !a.IsFinite() || !b.IsFinite() {
			return [4]ControlPoint{}, false
		}
		out[k] = a.Midpoint(b)
	}
	for k := 0; k < 4; k++ {
		if va[idx+k].Radius < 0 || vb[idx+k].Radius < 0 {
			return [4]ControlPoint{}, false
		}
	}
	return out, true
}
