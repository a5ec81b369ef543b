// Package collision holds the collidable-object registry with its spatial hash
// broad phase, the shape-pair narrow phase, raycasts, and the stage collider
// used by the movement integrator.
package collision

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is the collision volume of an object.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeBox
	shapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	}
	return "unknown"
}

// ParseShape maps a content name to a Shape.
func ParseShape(name string) (Shape, bool) {
	switch name {
	case "sphere":
		return ShapeSphere, true
	case "box":
		return ShapeBox, true
	}
	return 0, false
}

var (
	ErrEmptyID     = errors.New("collision: object id is empty")
	ErrDuplicateID = errors.New("collision: object id already registered")
)

// Object is a registered collidable. Size holds the radius in X for spheres
// and the half-extents for boxes. Position is the volume's center.
type Object struct {
	ID       string
	Shape    Shape
	Position mgl64.Vec3
	Size     mgl64.Vec3
	Static   bool
	Trigger  bool
	Layer    string

	// OnCollision runs when a trigger is consumed by ProcessTriggers.
	// other is the object that touched it.
	OnCollision func(other Object, c Contact)
}

// Radius is the sphere radius. Only meaningful for spheres.
func (o *Object) Radius() float64 {
	return o.Size.X()
}

// footprint returns the half-widths of the object's XZ bounding rectangle.
func (o *Object) footprint() (ex, ez float64) {
	if o.Shape == ShapeSphere {
		return o.Size.X(), o.Size.X()
	}
	return o.Size.X(), o.Size.Z()
}

// Contact describes an overlap between two objects.
type Contact struct {
	Normal  mgl64.Vec3
	Point   mgl64.Vec3
	Depth   float64
	OtherID string
}

// NewSphere is a convenience constructor for sphere objects.
func NewSphere(id string, center mgl64.Vec3, radius float64) Object {
	return Object{ID: id, Shape: ShapeSphere, Position: center, Size: mgl64.Vec3{radius, radius, radius}}
}

// NewBox is a convenience constructor for box objects.
func NewBox(id string, center, halfExtents mgl64.Vec3) Object {
	return Object{ID: id, Shape: ShapeBox, Position: center, Size: halfExtents}
}
