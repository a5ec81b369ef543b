package gamemath

import "github.com/go-gl/mathgl/mgl64"

const normalizeEpsilon = 1e-12

// SafeNormalize returns v scaled to unit length, or the zero vector when v
// has no length. mgl64's Normalize divides by zero in that case.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < normalizeEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// FlattenXZ projects v onto the ground plane and normalizes it.
func FlattenXZ(v mgl64.Vec3) mgl64.Vec3 {
	return SafeNormalize(mgl64.Vec3{v.X(), 0, v.Z()})
}

// HorizontalLen is the length of v ignoring Y.
func HorizontalLen(v mgl64.Vec3) float64 {
	return mgl64.Vec2{v.X(), v.Z()}.Len()
}

// LerpVec3 interpolates from a toward b by t.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// ClampVec3 clamps each component of v into [lo, hi].
func ClampVec3(v, lo, hi mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		Clamp(v.X(), lo.X(), hi.X()),
		Clamp(v.Y(), lo.Y(), hi.Y()),
		Clamp(v.Z(), lo.Z(), hi.Z()),
	}
}
