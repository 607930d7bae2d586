package curve3

import "github.com/chewxy/math32"

// boundsOf applies the geometry's bounding strategy to a curve: flat
// curves get cheap tessellated bounds, round curves accurate swept-radius
// bounds.
func (g *Geometry) boundsOf(c SpaceCurve) Box3 {
	if g.subtype == SubtypeFlat {
		return c.TessellatedBounds(g.tessellationRate)
	}
	return c.AccurateBounds()
}

// Bounds returns the static bounds of curve i at a discrete timestep.
//
// The result always contains every point of the evaluated curve at that
// timestep. The curve's topology must be in range and its samples finite;
// use [Geometry.Valid] or [Geometry.BuildBounds] when that is not known.
func (g *Geometry) Bounds(i, timestep int) Box3 {
	return g.boundsOf(g.Curve(i, timestep))
}

// BoundsTransformed returns the static bounds of curve i with its control
// points mapped through the given affine transform before bounding. Radii
// are left unchanged. This bounds a primitive in a locally aligned
// coordinate frame rather than world space; see [Geometry.AlignedSpace].
func (g *Geometry) BoundsTransformed(space AffineSpace, i, timestep int) Box3 {
	p0, p1, p2, p3 := g.Gather(i, timestep)
	xfm := func(p ControlPoint) ControlPoint {
		return ControlPoint{Position: space.ApplyPoint(p.Position), Radius: p.Radius}
	}
	return g.boundsOf(CurveOf(g.basis, xfm(p0), xfm(p1), xfm(p2), xfm(p3)))
}

// BoundsRescaled returns the static bounds of curve i inside a normalized
// local reference frame: positions are recentred by offset, scaled by
// scale, and mapped through the linear transform; radii are scaled by
// radiusScale·scale. Used to bound a primitive for a node-local secondary
// structure.
//
// With offset zero, scale and radiusScale one, and the identity transform,
// the result equals [Geometry.Bounds].
func (g *Geometry) BoundsRescaled(offset Vec3, scale, radiusScale float32, space LinearSpace, i, timestep int) Box3 {
	rscale := radiusScale * scale
	p0, p1, p2, p3 := g.Gather(i, timestep)
	xfm := func(p ControlPoint) ControlPoint {
		return ControlPoint{
			Position: space.Apply(p.Position.Sub(offset).Mul(scale)),
			Radius:   p.Radius * rscale,
		}
	}
	return g.boundsOf(CurveOf(g.basis, xfm(p0), xfm(p1), xfm(p2), xfm(p3)))
}

// LinearBoundsSegment returns the linear bounds of curve i over time
// segment itime: the box union envelope between the static bounds at the
// segment's two timesteps. The envelope is conservative rather than exact:
// the true trajectory is curved, the envelope linear.
func (g *Geometry) LinearBoundsSegment(i, itime int) LinearBox {
	return LinearBox{
		Bounds0: g.Bounds(i, itime),
		Bounds1: g.Bounds(i, itime+1),
	}
}

// LinearBoundsSegmentTransformed is [Geometry.LinearBoundsSegment] with the
// control points mapped through an affine transform first.
func (g *Geometry) LinearBoundsSegmentTransformed(space AffineSpace, i, itime int) LinearBox {
	return LinearBox{
		Bounds0: g.BoundsTransformed(space, i, itime),
		Bounds1: g.BoundsTransformed(space, i, itime+1),
	}
}

// LinearBounds returns conservative linear bounds of curve i over an
// arbitrary continuous time window: static bounds are sampled at every
// time-segment boundary the window touches, the boundary samples are
// interpolated to the exact window ends, and the end boxes are widened
// until their interpolation covers every interior sample. The motion
// across the window is thereby approximated by a single linear segment
// enveloping the piecewise-linear trajectory.
//
// For every discrete timestep whose support lies in the window, the static
// bounds at that timestep are contained in the enclosing box of the
// result.
func (g *Geometry) LinearBounds(i int, w TimeRange) LinearBox {
	return linearBoundsOver(func(itime int) Box3 { return g.Bounds(i, itime) }, w, g.NumTimeSegments())
}

// LinearBoundsTransformed is [Geometry.LinearBounds] with the control
// points mapped through an affine transform first.
func (g *Geometry) LinearBoundsTransformed(space AffineSpace, i int, w TimeRange) LinearBox {
	return linearBoundsOver(func(itime int) Box3 { return g.BoundsTransformed(space, i, itime) }, w, g.NumTimeSegments())
}

// LinearBoundsRescaled is [Geometry.LinearBounds] inside a normalized
// local reference frame; see [Geometry.BoundsRescaled].
func (g *Geometry) LinearBoundsRescaled(offset Vec3, scale, radiusScale float32, space LinearSpace, i int, w TimeRange) LinearBox {
	return linearBoundsOver(func(itime int) Box3 {
		return g.BoundsRescaled(offset, scale, radiusScale, space, i, itime)
	}, w, g.NumTimeSegments())
}

// LinearBoundsSafe combines validity checking with bound computation: it
// returns the linear bounds of curve i over the window if the curve is
// valid at every timestep the window touches. If any touched timestep is
// invalid it returns false and the bounds must not be used; a partially
// degenerate moving primitive is never partially bounded.
func (g *Geometry) LinearBoundsSafe(i int, w TimeRange) (LinearBox, bool) {
	n := g.NumTimeSegments()
	if n < 1 {
		if !g.Valid(i, 0) {
			return LinearBox{}, false
		}
		b := g.Bounds(i, 0)
		return LinearBox{Bounds0: b, Bounds1: b}, true
	}
	lo, hi := TimeSegmentRange(w, n)
	if !g.ValidRange(i, lo, hi+1) {
		return LinearBox{}, false
	}
	return g.LinearBounds(i, w), true
}

// linearBoundsOver builds conservative linear bounds over a time window
// from a static bounds sampler defined at the n+1 segment boundaries.
func linearBoundsOver(boundsAt func(itime int) Box3, w TimeRange, n int) LinearBox {
	if n < 1 {
		b := boundsAt(0)
		return LinearBox{Bounds0: b, Bounds1: b}
	}

	lof := w.Lo * float32(n)
	hif := w.Hi * float32(n)
	ilo := clampInt(int(math32.Floor(lof)), 0, n-1)
	ihi := clampInt(int(math32.Ceil(hif)), ilo+1, n)

	// Interpolate the first and last segment to the exact window ends.
	// Boxes of linearly moving control points interpolate conservatively.
	b0 := lerpBox(boundsAt(ilo), boundsAt(ilo+1), clamp01(lof-float32(ilo)))
	b1 := lerpBox(boundsAt(ihi-1), boundsAt(ihi), clamp01(hif-float32(ihi-1)))

	// Widen both ends so that interpolating between them covers the
	// samples at the interior boundaries.
	for t := ilo + 1; t < ihi; t++ {
		f := (float32(t) - lof) / (hif - lof)
		bt := lerpBox(b0, b1, f)
		bi := boundsAt(t)
		dlo := bi.Min.Sub(bt.Min).Min(Vec3{})
		dhi := bi.Max.Sub(bt.Max).Max(Vec3{})
		b0.Min = b0.Min.Add(dlo)
		b1.Min = b1.Min.Add(dlo)
		b0.Max = b0.Max.Add(dhi)
		b1.Max = b1.Max.Add(dhi)
	}
	return LinearBox{Bounds0: b0, Bounds1: b1}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
