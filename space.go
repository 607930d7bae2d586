package curve3

// LinearSpace is a linear map in 3D space (rotation, scale, shear, but no
// translation), stored as its three column vectors: the images of the x, y,
// and z unit vectors.
type LinearSpace struct {
	VX, VY, VZ Vec3
}

// IdentityLinear is the identity linear map.
var IdentityLinear = LinearSpace{
	VX: Vec3{X: 1},
	VY: Vec3{Y: 1},
	VZ: Vec3{Z: 1},
}

// Apply transforms the vector v by the linear map.
func (m LinearSpace) Apply(v Vec3) Vec3 {
	return m.VX.Mul(v.X).Add(m.VY.Mul(v.Y)).Add(m.VZ.Mul(v.Z))
}

// Transposed returns the transpose of the linear map. For the orthonormal
// frames produced by [Frame] and [Geometry.AlignedSpace], the transpose is
// the inverse, mapping world space into the frame's local space.
func (m LinearSpace) Transposed() LinearSpace {
	return LinearSpace{
		VX: Vec3{m.VX.X, m.VY.X, m.VZ.X},
		VY: Vec3{m.VX.Y, m.VY.Y, m.VZ.Y},
		VZ: Vec3{m.VX.Z, m.VY.Z, m.VZ.Z},
	}
}

// Frame returns some orthonormal frame whose z axis is the given unit
// vector. The choice of the remaining two axes is arbitrary but
// deterministic: of the two canonical vectors perpendicular to z in the
// xy-ish planes, the longer one is picked to avoid cancellation.
func Frame(z Vec3) LinearSpace {
	dx0 := Vec3{X: 0, Y: z.Z, Z: -z.Y}
	dx1 := Vec3{X: -z.Z, Y: 0, Z: z.X}
	dx := dx1
	if dx0.Hypot2() > dx1.Hypot2() {
		dx = dx0
	}
	dx = dx.Normalize()
	dy := z.Cross(dx).Normalize()
	return LinearSpace{VX: dx, VY: dy, VZ: z}
}

// AffineSpace is an affine map in 3D space: a linear part followed by a
// translation.
type AffineSpace struct {
	L LinearSpace
	P Vec3
}

// IdentityAffine is the identity affine map.
var IdentityAffine = AffineSpace{L: IdentityLinear}

// ApplyPoint transforms the point p by the affine map.
func (a AffineSpace) ApplyPoint(p Vec3) Vec3 {
	return a.L.Apply(p).Add(a.P)
}

// ApplyVector transforms the vector v by the affine map, ignoring the
// translation.
func (a AffineSpace) ApplyVector(v Vec3) Vec3 {
	return a.L.Apply(v)
}

// Translate returns the affine map that translates by v.
func Translate(v Vec3) AffineSpace {
	return AffineSpace{L: IdentityLinear, P: v}
}
