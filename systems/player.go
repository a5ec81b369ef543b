package systems

import (
	"github.com/automoto/wayfarer/components"
	"github.com/automoto/wayfarer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetPlayerEntry returns the single player entity.
func GetPlayerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// GetPlayer returns the player state, if a player has been spawned.
func GetPlayer(ecs *ecs.ECS) (*components.PlayerData, bool) {
	entry, ok := GetPlayerEntry(ecs)
	if !ok {
		return nil, false
	}
	return components.Player.Get(entry), true
}

// getAvatar returns the avatar transform, defaulting to unit scale.
func getAvatar(ecs *ecs.ECS) components.AvatarData {
	entry, ok := GetPlayerEntry(ecs)
	if !ok || !entry.HasComponent(components.Avatar) {
		return components.AvatarData{Scale: 1}
	}
	return *components.Avatar.Get(entry)
}

// GetCollision returns the active stage's collision state.
func GetCollision(ecs *ecs.ECS) (*components.CollisionData, bool) {
	entry, ok := components.Collision.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Collision.Get(entry), true
}
