package systems

import (
	"github.com/automoto/wayfarer/components"
	"github.com/automoto/wayfarer/shared/collision"
	"github.com/automoto/wayfarer/systems/factory"
	"github.com/automoto/wayfarer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions syncs the player's body into the registry and fires any
// triggers it overlaps. Triggers leave the registry as they fire.
func UpdateCollisions(e *ecs.ECS) {
	col, ok := GetCollision(e)
	if !ok || col.World == nil {
		return
	}
	player, ok := GetPlayer(e)
	if !ok {
		return
	}
	col.World.Move(tags.PlayerBodyID, factory.BodyCenter(player.Position))
	col.World.ProcessTriggers(tags.PlayerBodyID)
}

// PlayerOverlaps reports whether the player's body overlaps any registry
// object. bruteForce skips the grid, for cross-checking it.
func PlayerOverlaps(e *ecs.ECS, bruteForce bool) bool {
	col, ok := GetCollision(e)
	if !ok || col.World == nil {
		return false
	}
	if bruteForce {
		return col.World.HasCollisionBruteForce(tags.PlayerBodyID)
	}
	return col.World.HasCollision(tags.PlayerBodyID)
}

// Contacts returns the registry contacts of the player's body.
func Contacts(e *ecs.ECS) []collision.Contact {
	col, ok := GetCollision(e)
	if !ok || col.World == nil {
		return nil
	}
	return col.World.Contacts(tags.PlayerBodyID)
}

// NearbyObjects returns the registry ids in the grid block around the
// player, without the player's own body.
func NearbyObjects(e *ecs.ECS) []string {
	col, ok := GetCollision(e)
	if !ok || col.World == nil {
		return nil
	}
	player, ok := GetPlayer(e)
	if !ok {
		return nil
	}
	var ids []string
	for _, id := range col.World.QueryPoint(player.Position) {
		if id != tags.PlayerBodyID {
			ids = append(ids, id)
		}
	}
	return ids
}

// LookHit casts from the camera along its view direction and returns the
// nearest stage primitive or item within maxDistance. The player's own body
// is ignored.
func LookHit(e *ecs.ECS, maxDistance float64) (collision.Hit, bool) {
	col, ok := GetCollision(e)
	if !ok || col.World == nil {
		return collision.Hit{}, false
	}
	entry, ok := components.CameraRig.First(e.World)
	if !ok {
		return collision.Hit{}, false
	}
	rig := components.CameraRig.Get(entry)
	if !rig.Initialized {
		return collision.Hit{}, false
	}
	return col.World.Raycast(collision.Ray{
		Origin:      rig.Position,
		Direction:   rig.Target.Sub(rig.Position),
		MaxDistance: maxDistance,
		Layers:      []string{tags.LayerStage, tags.LayerItem},
		IgnoreID:    tags.PlayerBodyID,
	})
}
