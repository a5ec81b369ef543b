package systems

import (
	"github.com/automoto/wayfarer/components"
	"github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/gamemath"
	"github.com/automoto/wayfarer/systems/factory"
	"github.com/automoto/wayfarer/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCameraControl applies this frame's look and zoom deltas and the mode
// cycle action to the camera state.
func UpdateCameraControl(e *ecs.ECS) {
	input := getOrCreateInput(e)
	camera := GetOrCreateCamera(e)

	camera.Yaw = gamemath.WrapAngle(camera.Yaw - input.LookDX)
	camera.Pitch = gamemath.ClampPitch(camera.Pitch+input.LookDY, config.Camera.PitchLimit)
	camera.Zoom = gamemath.Clamp(camera.Zoom+input.ZoomDelta, 0, 1)

	if GetAction(input, config.ActionCycleCamera).JustPressed {
		camera.Mode = camera.Mode.Next()
	}
}

// UpdateCamera derives the view transform from the player and camera state.
// Runs last so it sees this frame's movement.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	rig := components.CameraRig.Get(cameraEntry)

	player, ok := GetPlayer(e)
	if !ok {
		return // no player yet, keep the last view
	}
	avatar := getAvatar(e)
	dt := GetFrame(e).DT
	up := mgl64.Vec3(config.Camera.Up)

	snap := !rig.Initialized || rig.Mode != camera.Mode
	head := player.Position.Add(up.Mul(config.Camera.HeadHeight*avatar.Scale + avatar.HeightOffset))

	switch camera.Mode {
	case config.CameraFirstPerson:
		eye := player.Position.Add(up.Mul(config.Camera.EyeHeight*avatar.Scale + avatar.HeightOffset))
		rig.Position = eye
		rig.Target = eye.Add(gamemath.SphericalToCartesian(camera.Yaw, camera.Pitch, 1))
		rig.Up = up
		rig.Distance = 0
	case config.CameraDrone:
		ideal := player.Position.Add(mgl64.Vec3{0, config.Camera.DroneHeight, 0})
		if snap {
			rig.Position = ideal
		} else {
			t := gamemath.ExpSmoothing(config.Camera.Smoothing, dt)
			rig.Position = gamemath.LerpVec3(rig.Position, ideal, t)
		}
		// Aimed at the player so a lagging rig still keeps them centered
		rig.Target = player.Position
		// Straight down needs an up vector off the view axis
		rig.Up, _ = gamemath.GroundBasis(camera.Yaw)
		rig.Distance = config.Camera.DroneHeight
	default:
		distance := gamemath.ZoomDistance(config.Camera.MinDistance, config.Camera.MaxDistance, camera.Zoom)
		ideal := head.Sub(gamemath.SphericalToCartesian(camera.Yaw, camera.Pitch, distance))
		if snap {
			rig.Position = ideal
		} else {
			t := gamemath.FollowLerp(config.Camera.FollowSpeed, config.Camera.Smoothing, dt)
			rig.Position = gamemath.LerpVec3(rig.Position, ideal, t)
		}
		rig.Target = head
		rig.Up = up
		rig.Distance = distance
	}

	rig.View = mgl64.LookAtV(rig.Position, rig.Target, rig.Up)
	rig.Mode = camera.Mode
	rig.Initialized = true
}

// GetOrCreateCamera returns the camera state, spawning a default camera
// if none exists.
func GetOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := tags.Camera.First(e.World)
	if !ok {
		entry = spawnDefaultCamera(e)
	}
	return components.Camera.Get(entry)
}

func spawnDefaultCamera(e *ecs.ECS) *donburi.Entry {
	return factory.CreateCamera(e, factory.DefaultCameraState())
}
