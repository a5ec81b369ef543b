package gamemath

import "math"

// referenceRate is the frame rate the per-frame tuning constants were authored at.
const referenceRate = 60.0

// ClampDelta caps a frame delta at max. ok is false for non-positive deltas,
// which callers treat as a skipped frame.
func ClampDelta(dt, max float64) (effective float64, ok bool) {
	if dt <= 0 || math.IsNaN(dt) {
		return 0, false
	}
	if dt > max {
		return max, true
	}
	return dt, true
}

// FrameBlend converts a per-60Hz-frame blend fraction into the fraction for dt,
// so that closing f of a gap every 1/60 s behaves the same at any frame rate.
func FrameBlend(f, dt float64) float64 {
	return 1 - math.Pow(1-f, referenceRate*dt)
}

// ExpSmoothing returns the lerp factor for a smoothing constant expressed as
// the residual fraction left after one 60 Hz frame.
func ExpSmoothing(smoothing, dt float64) float64 {
	return 1 - math.Pow(smoothing, referenceRate*dt)
}

// FollowLerp is the camera follow factor, bounded by both the follow speed
// and the exponential smoothing curve.
func FollowLerp(followSpeed, smoothing, dt float64) float64 {
	return math.Min(followSpeed*dt, ExpSmoothing(smoothing, dt))
}

// PerFrame scales a per-60Hz-frame amount to dt.
func PerFrame(amount, dt float64) float64 {
	return amount * referenceRate * dt
}

// MagnetForce is the pull toward an attractor at distance d, zero outside rng.
func MagnetForce(rng, d, strength float64) float64 {
	if rng <= 0 || d >= rng {
		return 0
	}
	k := (rng - d) / rng
	return k * k * strength
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
