package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angles follow one convention throughout: yaw 0 faces -Z, positive yaw
// turns toward -X, positive pitch looks down.

// ZoomDistance maps zoom in [0,1] (0 far, 1 near) to an orbit distance with
// quadratic easing.
func ZoomDistance(minDist, maxDist, zoom float64) float64 {
	zoom = Clamp(zoom, 0, 1)
	inv := 1 - zoom
	return minDist + (maxDist-minDist)*inv*inv
}

// SphericalToCartesian returns the view direction for yaw and pitch scaled by d.
func SphericalToCartesian(yaw, pitch, d float64) mgl64.Vec3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return mgl64.Vec3{-sy * cp, -sp, -cy * cp}.Mul(d)
}

// GroundBasis returns the XZ forward and right unit vectors for yaw.
func GroundBasis(yaw float64) (forward, right mgl64.Vec3) {
	sy, cy := math.Sincos(yaw)
	return mgl64.Vec3{-sy, 0, -cy}, mgl64.Vec3{cy, 0, -sy}
}

// HeadingOf returns the yaw whose forward vector points along v on the XZ plane.
func HeadingOf(v mgl64.Vec3) float64 {
	return math.Atan2(-v.X(), -v.Z())
}

// ClampPitch clamps pitch to [-limit, limit].
func ClampPitch(pitch, limit float64) float64 {
	return Clamp(pitch, -limit, limit)
}

// WrapAngle maps a into (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// LerpAngle interpolates from a toward b along the shortest arc.
func LerpAngle(a, b, t float64) float64 {
	return WrapAngle(a + WrapAngle(b-a)*t)
}
