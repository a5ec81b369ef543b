package collision

import (
	"math"

	"github.com/automoto/wayfarer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Ray describes a raycast. A MaxDistance of zero means unbounded. When Layers
// is non-empty only objects on those layers are considered.
type Ray struct {
	Origin      mgl64.Vec3
	Direction   mgl64.Vec3
	MaxDistance float64
	Layers      []string
	IgnoreID    string
}

// Hit is the nearest intersection found by Raycast.
type Hit struct {
	ID       string
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// Raycast scans every registered object and returns the nearest hit.
// Rays starting inside a volume hit it at distance zero.
func (w *World) Raycast(r Ray) (Hit, bool) {
	dir := gamemath.SafeNormalize(r.Direction)
	if dir == (mgl64.Vec3{}) {
		return Hit{}, false
	}
	limit := r.MaxDistance
	if limit <= 0 {
		limit = math.Inf(1)
	}

	var best Hit
	found := false
	for i := range w.slots {
		s := &w.slots[i]
		if !s.live || s.obj.ID == r.IgnoreID || !layerAllowed(s.obj.Layer, r.Layers) {
			continue
		}
		var t float64
		var n mgl64.Vec3
		var ok bool
		switch s.obj.Shape {
		case ShapeSphere:
			t, n, ok = raySphere(r.Origin, dir, s.obj.Position, s.obj.Radius())
		case ShapeBox:
			t, n, ok = rayBox(r.Origin, dir, s.obj.Position, s.obj.Size)
		}
		if !ok || t > limit || (found && t >= best.Distance) {
			continue
		}
		best = Hit{
			ID:       s.obj.ID,
			Point:    r.Origin.Add(dir.Mul(t)),
			Normal:   n,
			Distance: t,
		}
		found = true
	}
	return best, found
}

func layerAllowed(layer string, layers []string) bool {
	if len(layers) == 0 {
		return true
	}
	for _, l := range layers {
		if l == layer {
			return true
		}
	}
	return false
}

func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, mgl64.Vec3, bool) {
	oc := origin.Sub(center)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, dir.Mul(-1), true
	}
	b := oc.Dot(dir)
	if b > 0 {
		return 0, mgl64.Vec3{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, mgl64.Vec3{}, false
	}
	t := -b - math.Sqrt(disc)
	n := gamemath.SafeNormalize(origin.Add(dir.Mul(t)).Sub(center))
	return t, n, true
}

// rayBox is the slab test against an axis-aligned box.
func rayBox(origin, dir, center, half mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	nearAxis := -1

	for i := 0; i < 3; i++ {
		lo := center[i] - half[i]
		hi := center[i] + half[i]
		if dir[i] == 0 {
			if origin[i] < lo || origin[i] > hi {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		t1 := (lo - origin[i]) / dir[i]
		t2 := (hi - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
			nearAxis = i
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar || tFar < 0 {
			return 0, mgl64.Vec3{}, false
		}
	}

	if tNear < 0 || nearAxis < 0 {
		return 0, dir.Mul(-1), true
	}
	var n mgl64.Vec3
	n[nearAxis] = -math.Copysign(1, dir[nearAxis])
	return tNear, n, true
}
