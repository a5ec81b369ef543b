package systems

import (
	"math"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates the player with semi-implicit Euler: velocity is
// updated from input and gravity first, then position from the new velocity.
func UpdateMovement(e *ecs.ECS) {
	dt := GetFrame(e).DT
	if dt <= 0 {
		return
	}
	entry, ok := GetPlayerEntry(e)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	camera := GetOrCreateCamera(e)
	input := getOrCreateInput(e)

	player.Landed = false
	dir := InputDirection(player.Inputs, camera.Yaw)

	hv := mgl64.Vec3{player.Velocity.X(), 0, player.Velocity.Z()}
	vy := player.Velocity.Y()

	if player.OnGround {
		speed := cfg.Movement.WalkSpeed
		if player.Inputs.Has(components.MoveSprint) {
			speed = cfg.Movement.RunSpeed
		}
		blend := gamemath.FrameBlend(cfg.Movement.GroundFriction, dt)
		hv = hv.Add(dir.Mul(speed).Sub(hv).Mul(blend))

		if GetAction(input, cfg.ActionJump).JustPressed {
			vy = cfg.Movement.JumpForce
			player.OnGround = false
		}
	} else {
		hv = hv.Add(dir.Mul(gamemath.PerFrame(cfg.Movement.AirControl, dt)))
		hv = hv.Mul(math.Max(0, 1-cfg.Movement.AirFriction*dt))
	}

	vy -= cfg.Movement.Gravity * dt
	velocity := mgl64.Vec3{hv.X(), vy, hv.Z()}
	tentative := player.Position.Add(velocity.Mul(dt))

	position := tentative
	if col, ok := GetCollision(e); ok && col.Stage != nil {
		res := col.Stage.Slide(player.Position, tentative, cfg.Movement.Radius)
		position = res.Position
		if res.BlockedX && math.Abs(position.X()-player.Position.X()) < cfg.Collision.BlockEpsilon {
			velocity[0] = 0
		}
		if res.BlockedZ && math.Abs(position.Z()-player.Position.Z()) < cfg.Collision.BlockEpsilon {
			velocity[2] = 0
		}
	}

	applyGroundClamp(player, &position, &velocity)
	player.Position = position
	player.Velocity = velocity

	if camera.Mode != cfg.CameraFirstPerson {
		updateFacing(player, dt)
	}
}

// InputDirection is the camera-relative unit direction for the held movement
// flags, or zero when they cancel out or none are held.
func InputDirection(flags components.MoveFlags, yaw float64) mgl64.Vec3 {
	forward, right := gamemath.GroundBasis(yaw)
	var dir mgl64.Vec3
	if flags.Has(components.MoveForward) {
		dir = dir.Add(forward)
	}
	if flags.Has(components.MoveBackward) {
		dir = dir.Sub(forward)
	}
	if flags.Has(components.MoveRight) {
		dir = dir.Add(right)
	}
	if flags.Has(components.MoveLeft) {
		dir = dir.Sub(right)
	}
	return gamemath.SafeNormalize(dir)
}

// applyGroundClamp keeps the feet on or above the ground plane. OnGround and
// Landed change only on the transition.
func applyGroundClamp(player *components.PlayerData, position, velocity *mgl64.Vec3) {
	ground := cfg.Movement.GroundLevel
	eps := cfg.Movement.GroundEpsilon

	if position.Y() <= ground+eps && velocity.Y() <= 0 {
		position[1] = ground
		velocity[1] = 0
		if !player.OnGround {
			player.OnGround = true
			player.Landed = true
		}
		return
	}
	if player.OnGround && position.Y() > ground+eps {
		player.OnGround = false
	}
}

func updateFacing(player *components.PlayerData, dt float64) {
	if gamemath.HorizontalLen(player.Velocity) <= cfg.Movement.TurnThreshold {
		return
	}
	t := math.Min(cfg.Movement.TurnSpeed*dt, 1)
	player.Rotation = gamemath.LerpAngle(player.Rotation, gamemath.HeadingOf(player.Velocity), t)
}
