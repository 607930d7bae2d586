package curve3

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a vector or point in 3D space.
//
// All geometry in this package is computed in float32, matching the numeric
// model of GPU-adjacent rendering pipelines that consume the results.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Add returns the vector v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the vector v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the vector scaled by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns the vector -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float32 {
	return math32.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float32 {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1.0 / v.Hypot())
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Min returns the componentwise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{
		X: math32.Min(v.X, o.X),
		Y: math32.Min(v.Y, o.Y),
		Z: math32.Min(v.Z, o.Z),
	}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{
		X: math32.Max(v.X, o.X),
		Y: math32.Max(v.Y, o.Y),
		Z: math32.Max(v.Z, o.Z),
	}
}

// IsFinite reports whether all components are finite and not NaN.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// isFinite reports whether f is neither NaN nor an infinity.
func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// ControlPoint is a curve control point: a position with a co-located
// radius. For round curves the radius is the swept tube radius at that
// point; for flat curves it is the ribbon half-width.
type ControlPoint struct {
	Position Vec3
	Radius   float32
}

// CP returns the control point at ⟨x, y, z⟩ with radius r.
func CP(x, y, z, r float32) ControlPoint {
	return ControlPoint{Position: Vec3{x, y, z}, Radius: r}
}

func (p ControlPoint) String() string {
	return fmt.Sprintf("(%v, r=%g)", p.Position, p.Radius)
}

// Lerp interpolates position and radius componentwise. Blending the radius
// together with the position is what makes bounds of blended control points
// conservative: the blend happens before any bounding, never after.
func (p ControlPoint) Lerp(o ControlPoint, t float32) ControlPoint {
	return ControlPoint{
		Position: p.Position.Lerp(o.Position, t),
		Radius:   p.Radius + t*(o.Radius-p.Radius),
	}
}

// Midpoint returns the control point halfway between p and o.
func (p ControlPoint) Midpoint(o ControlPoint) ControlPoint {
	return p.Lerp(o, 0.5)
}

// IsFinite reports whether the position and the radius are finite and not
// NaN. It does not test the sign of the radius; see [Geometry.Valid] for
// the strict per-timestep check.
func (p ControlPoint) IsFinite() bool {
	return p.Position.IsFinite() && isFinite(p.Radius)
}
