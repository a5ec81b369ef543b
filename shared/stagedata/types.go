// Package stagedata loads per-stage static collision content. It has no
// dependencies on ebitengine, donburi, or resolv; pure data only.
package stagedata

import (
	"errors"
	"fmt"
)

// Kind is what a primitive represents in the stage.
type Kind string

const (
	KindBuilding Kind = "building"
	KindTree     Kind = "tree"
	KindRock     Kind = "rock"
	KindLava     Kind = "lava"
)

// Shape names accepted in stage content.
const (
	ShapeSphere = "sphere"
	ShapeBox    = "box"
)

// Vec3 is a plain position or size in world units.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Bounds is the playable XZ rectangle of a stage.
type Bounds struct {
	MinX float64 `yaml:"minX"`
	MinZ float64 `yaml:"minZ"`
	MaxX float64 `yaml:"maxX"`
	MaxZ float64 `yaml:"maxZ"`
}

// Primitive is one static collidable. Position is the volume center. Size
// holds the radius in X for spheres and the half-extents for boxes.
type Primitive struct {
	ID       string `yaml:"id"`
	Kind     Kind   `yaml:"kind"`
	Shape    string `yaml:"shape"`
	Position Vec3   `yaml:"position"`
	Size     Vec3   `yaml:"size"`
}

// Collectible is a pickup placed in the stage.
type Collectible struct {
	ID       string  `yaml:"id"`
	Position Vec3    `yaml:"position"`
	Value    int     `yaml:"value"`
	Radius   float64 `yaml:"radius"`
}

// StageCollisionData holds everything the core reads about a stage.
type StageCollisionData struct {
	ID           string        `yaml:"id"`
	Spawn        Vec3          `yaml:"spawn"`
	Bounds       Bounds        `yaml:"bounds"`
	Primitives   []Primitive   `yaml:"primitives"`
	Collectibles []Collectible `yaml:"collectibles"`
}

// Validate checks the stage for content the collision system cannot use and
// fills in primitive ids that were left blank.
func (s *StageCollisionData) Validate() error {
	var errs []error
	if s.Bounds.MaxX < s.Bounds.MinX || s.Bounds.MaxZ < s.Bounds.MinZ {
		errs = append(errs, fmt.Errorf("stage %s: inverted bounds", s.ID))
	}
	for i := range s.Primitives {
		p := &s.Primitives[i]
		if p.ID == "" {
			p.ID = fmt.Sprintf("%s/%s-%d", s.ID, p.Kind, i)
		}
		switch p.Shape {
		case ShapeSphere:
			if p.Size.X <= 0 {
				errs = append(errs, fmt.Errorf("primitive %s: sphere radius must be positive", p.ID))
			}
		case ShapeBox:
			if p.Size.X <= 0 || p.Size.Y <= 0 || p.Size.Z <= 0 {
				errs = append(errs, fmt.Errorf("primitive %s: box half-extents must be positive", p.ID))
			}
		default:
			errs = append(errs, fmt.Errorf("primitive %s: unknown shape %q", p.ID, p.Shape))
		}
	}
	for i := range s.Collectibles {
		c := &s.Collectibles[i]
		if c.ID == "" {
			c.ID = fmt.Sprintf("%s/item-%d", s.ID, i)
		}
		if c.Value == 0 {
			c.Value = 1
		}
	}
	return errors.Join(errs...)
}
