package factory

import (
	"fmt"

	"github.com/automoto/wayfarer/archetypes"
	"github.com/automoto/wayfarer/assets/animations"
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/collision"
	"github.com/automoto/wayfarer/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at spawn and registers its body.
func CreatePlayer(ecs *ecs.ECS, world *collision.World, spawn mgl64.Vec3, avatar components.AvatarData) (*donburi.Entry, error) {
	r := cfg.Movement.Radius
	body := collision.NewSphere(tags.PlayerBodyID, BodyCenter(spawn), r)
	body.Layer = tags.LayerPlayer
	if err := world.Add(body); err != nil {
		return nil, fmt.Errorf("register player body: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Position: spawn,
		OnGround: spawn.Y() <= cfg.Movement.GroundLevel+cfg.Movement.GroundEpsilon,
		Animation: components.AnimationState{
			Category: cfg.CategoryIdle,
		},
	})
	if avatar.Scale <= 0 {
		avatar.Scale = cfg.Avatar.Scale
	}
	components.Avatar.SetValue(player, avatar)
	components.Body.SetValue(player, components.BodyData{ID: tags.PlayerBodyID})
	components.Animation.SetValue(player, components.AnimationData{
		Mixer: animations.NewMixer(cfg.Animation.FadeDuration),
		Clips: append([]string(nil), cfg.Animation.DefaultClips...),
		Dirty: true,
	})
	return player, nil
}

// BodyCenter is the center of the player's collision sphere for a feet position.
func BodyCenter(feet mgl64.Vec3) mgl64.Vec3 {
	return feet.Add(mgl64.Vec3{0, cfg.Movement.Radius, 0})
}
