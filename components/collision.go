package components

import (
	"github.com/automoto/wayfarer/shared/collision"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CollisionData holds the object registry and the active stage's collider.
type CollisionData struct {
	World   *collision.World
	Stage   *collision.StageCollider
	StageID string
	Spawn   mgl64.Vec3
}

var Collision = donburi.NewComponentType[CollisionData]()

// BodyData links an entity to its registry object.
type BodyData struct {
	ID string
}

var Body = donburi.NewComponentType[BodyData]()
