package curve3

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Box3 is an axis-aligned bounding box in 3D space, defined by its minimum
// and maximum corners.
type Box3 struct {
	Min Vec3
	Max Vec3
}

// EmptyBox3 returns the empty box, which is the identity element of
// [Box3.Union]: its minimum corner is +Inf and its maximum corner is -Inf.
func EmptyBox3() Box3 {
	return Box3{
		Min: Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		Max: Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
}

// NewBox3FromPoints returns the box with the extents of p0 and p1.
func NewBox3FromPoints(p0, p1 Vec3) Box3 {
	return Box3{Min: p0.Min(p1), Max: p0.Max(p1)}
}

func (b Box3) String() string {
	return fmt.Sprintf("[%v – %v]", b.Min, b.Max)
}

// IsEmpty reports whether the box contains no points (max < min on any
// axis).
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Union returns the smallest box containing both b and o.
func (b Box3) Union(o Box3) Box3 {
	return Box3{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// UnionPoint returns the smallest box containing both b and p.
func (b Box3) UnionPoint(p Vec3) Box3 {
	return Box3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Expand returns the box grown by d on all sides.
func (b Box3) Expand(d float32) Box3 {
	v := Vec3{d, d, d}
	return Box3{Min: b.Min.Sub(v), Max: b.Max.Add(v)}
}

// Contains reports whether p lies inside the box (boundary included).
func (b Box3) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsBox reports whether o lies entirely inside b.
func (b Box3) ContainsBox(o Box3) bool {
	return b.Contains(o.Min) && b.Contains(o.Max)
}

// Center returns the center of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Center2 returns twice the center of the box, i.e. min + max. Partition
// heuristics work on doubled centroids to save a multiplication per
// primitive.
func (b Box3) Center2() Vec3 {
	return b.Min.Add(b.Max)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// IsFinite reports whether both corners are finite and not NaN.
func (b Box3) IsFinite() bool {
	return b.Min.IsFinite() && b.Max.IsFinite()
}

// lerpBox interpolates the two boxes componentwise. For control points
// moving linearly in time, the interpolated box conservatively contains the
// box of the interpolated points.
func lerpBox(b0, b1 Box3, t float32) Box3 {
	return Box3{
		Min: b0.Min.Lerp(b1.Min, t),
		Max: b0.Max.Lerp(b1.Max, t),
	}
}

// LinearBox bounds a primitive that moves linearly in time: Bounds0 holds
// at the start of the time range and Bounds1 at the end, with the bound at
// any intermediate time given by componentwise interpolation. The union of
// two linear boxes and the box sampled at any time are conservative, which
// makes LinearBox a valid (if loose) envelope of piecewise-linear motion.
type LinearBox struct {
	Bounds0 Box3
	Bounds1 Box3
}

// EmptyLinearBox returns the linear box that is empty at both ends.
func EmptyLinearBox() LinearBox {
	return LinearBox{Bounds0: EmptyBox3(), Bounds1: EmptyBox3()}
}

// Interpolate returns the bound at relative time t ∈ [0, 1].
func (lb LinearBox) Interpolate(t float32) Box3 {
	return lerpBox(lb.Bounds0, lb.Bounds1, t)
}

// Union returns the linear box enclosing both lb and o at every time.
func (lb LinearBox) Union(o LinearBox) LinearBox {
	return LinearBox{
		Bounds0: lb.Bounds0.Union(o.Bounds0),
		Bounds1: lb.Bounds1.Union(o.Bounds1),
	}
}

// Enclose returns the static box containing the primitive over the whole
// time range.
func (lb LinearBox) Enclose() Box3 {
	return lb.Bounds0.Union(lb.Bounds1)
}
