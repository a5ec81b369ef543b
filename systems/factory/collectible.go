package factory

import (
	"fmt"

	"github.com/automoto/wayfarer/archetypes"
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/collision"
	"github.com/automoto/wayfarer/shared/stagedata"
	"github.com/automoto/wayfarer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollectible(ecs *ecs.ECS, world *collision.World, c stagedata.Collectible, onCollect CollectFunc) (*donburi.Entry, error) {
	radius := c.Radius
	if radius <= 0 {
		radius = cfg.Collectible.Radius
	}

	item := archetypes.Collectible.Spawn(ecs)
	components.Collectible.SetValue(item, components.CollectibleData{
		ID:       c.ID,
		Position: Vec(c.Position),
		Value:    c.Value,
	})
	components.Body.SetValue(item, components.BodyData{ID: c.ID})

	obj := collision.NewSphere(c.ID, Vec(c.Position), radius)
	obj.Trigger = true
	obj.Layer = tags.LayerItem
	w := ecs.World
	obj.OnCollision = func(other collision.Object, _ collision.Contact) {
		if other.ID == tags.PlayerBodyID && onCollect != nil {
			onCollect(w, item)
		}
	}
	if err := world.Add(obj); err != nil {
		w.Remove(item.Entity())
		return nil, fmt.Errorf("register collectible: %w", err)
	}
	return item, nil
}
