package systems

import (
	"log"
	"math"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/gamemath"
	"github.com/automoto/wayfarer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles pulls nearby items toward the player and captures the
// ones inside the capture radius. Runs after UpdateCollisions, which handles
// items whose trigger already overlaps the body.
func UpdateCollectibles(e *ecs.ECS) {
	dt := GetFrame(e).DT
	player, ok := GetPlayer(e)
	if !ok {
		return
	}
	col, ok := GetCollision(e)
	if !ok {
		return
	}
	center := factory.BodyCenter(player.Position)

	var captured []*donburi.Entry
	components.Collectible.Each(e.World, func(entry *donburi.Entry) {
		item := components.Collectible.Get(entry)
		if item.Collected {
			return
		}

		toPlayer := center.Sub(item.Position)
		d := toPlayer.Len()
		if d <= cfg.Collectible.CaptureRadius {
			captured = append(captured, entry)
			return
		}
		if dt <= 0 {
			return
		}

		force := gamemath.MagnetForce(cfg.Collectible.MagnetRange, d, cfg.Collectible.MagnetStrength)
		if force <= 0 {
			return
		}
		step := math.Min(force*dt, d)
		item.Position = item.Position.Add(gamemath.SafeNormalize(toPlayer).Mul(step))
		col.World.Move(item.ID, item.Position)
	})

	// Collected outside Each, since collecting edits the world
	for _, entry := range captured {
		CollectItem(e.World, entry)
	}
}

// CollectItem moves an item into the player's inventory. Items that have
// already been collected are ignored, so the trigger callback and the
// capture check may both reach the same item.
func CollectItem(w donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	item := components.Collectible.Get(entry)
	if item.Collected {
		return
	}
	item.Collected = true

	if colEntry, ok := components.Collision.First(w); ok {
		components.Collision.Get(colEntry).World.Remove(item.ID)
	}
	if playerEntry, ok := components.Inventory.First(w); ok {
		inv := components.Inventory.Get(playerEntry)
		inv.Items++
		inv.Value += item.Value
		log.Printf("Collected %s (%d items, value %d)", item.ID, inv.Items, inv.Value)
	}
}
