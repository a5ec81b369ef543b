package archetypes

import (
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Avatar,
		components.Body,
		components.Animation,
		components.Inventory,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.CameraRig,
	)
	Stage = newArchetype(
		tags.Stage,
		components.Collision,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Body,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
