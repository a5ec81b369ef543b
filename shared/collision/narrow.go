package collision

import (
	"math"

	"github.com/automoto/wayfarer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

type pairTest func(a, b *Object) (Contact, bool)

var narrowPhase [shapeCount][shapeCount]pairTest

func init() {
	narrowPhase[ShapeSphere][ShapeSphere] = sphereSphere
	narrowPhase[ShapeSphere][ShapeBox] = sphereBox
	narrowPhase[ShapeBox][ShapeSphere] = boxSphere
	narrowPhase[ShapeBox][ShapeBox] = boxBox
}

// Collide runs the narrow-phase test for the pair. Unknown shapes never collide.
func Collide(a, b *Object) (Contact, bool) {
	if a.Shape < 0 || a.Shape >= shapeCount || b.Shape < 0 || b.Shape >= shapeCount {
		return Contact{}, false
	}
	c, ok := narrowPhase[a.Shape][b.Shape](a, b)
	if ok {
		c.OtherID = b.ID
	}
	return c, ok
}

// Normal points from a toward b.
func sphereSphere(a, b *Object) (Contact, bool) {
	ra, rb := a.Radius(), b.Radius()
	delta := b.Position.Sub(a.Position)
	dist := delta.Len()
	if dist >= ra+rb {
		return Contact{}, false
	}
	n := gamemath.SafeNormalize(delta)
	return Contact{
		Normal: n,
		Point:  a.Position.Add(n.Mul(ra)),
		Depth:  ra + rb - dist,
	}, true
}

// Normal points from the box surface toward the sphere center.
func sphereBox(s, b *Object) (Contact, bool) {
	r := s.Radius()
	lo := b.Position.Sub(b.Size)
	hi := b.Position.Add(b.Size)
	closest := gamemath.ClampVec3(s.Position, lo, hi)

	delta := s.Position.Sub(closest)
	dist := delta.Len()
	if dist >= r {
		return Contact{}, false
	}
	if dist > 0 {
		return Contact{
			Normal: delta.Mul(1 / dist),
			Point:  closest,
			Depth:  r - dist,
		}, true
	}

	// Center inside the box: push out along the face of least penetration.
	axis, sign, pen := leastPenetration(s.Position.Sub(b.Position), b.Size)
	var n mgl64.Vec3
	n[axis] = sign
	p := s.Position
	p[axis] = b.Position[axis] + sign*b.Size[axis]
	return Contact{Normal: n, Point: p, Depth: r + pen}, true
}

func boxSphere(b, s *Object) (Contact, bool) {
	c, ok := sphereBox(s, b)
	if !ok {
		return Contact{}, false
	}
	c.Normal = c.Normal.Mul(-1)
	return c, true
}

// Normal lies on the axis of least penetration, pointing from a toward b.
func boxBox(a, b *Object) (Contact, bool) {
	delta := b.Position.Sub(a.Position)
	var overlap mgl64.Vec3
	for i := 0; i < 3; i++ {
		overlap[i] = a.Size[i] + b.Size[i] - math.Abs(delta[i])
		if overlap[i] <= 0 {
			return Contact{}, false
		}
	}

	axis := 0
	for i := 1; i < 3; i++ {
		if overlap[i] < overlap[axis] {
			axis = i
		}
	}
	var n mgl64.Vec3
	n[axis] = 1
	if delta[axis] < 0 {
		n[axis] = -1
	}

	// Center of the overlap region.
	var p mgl64.Vec3
	for i := 0; i < 3; i++ {
		lo := math.Max(a.Position[i]-a.Size[i], b.Position[i]-b.Size[i])
		hi := math.Min(a.Position[i]+a.Size[i], b.Position[i]+b.Size[i])
		p[i] = (lo + hi) / 2
	}
	return Contact{Normal: n, Point: p, Depth: overlap[axis]}, true
}

// leastPenetration finds the box face nearest to a point given relative to
// the box center.
func leastPenetration(rel, half mgl64.Vec3) (axis int, sign, depth float64) {
	depth = math.Inf(1)
	for i := 0; i < 3; i++ {
		d := half[i] - math.Abs(rel[i])
		if d < depth {
			depth = d
			axis = i
			sign = 1
			if rel[i] < 0 {
				sign = -1
			}
		}
	}
	return axis, sign, depth
}
