package factory

import (
	"github.com/automoto/wayfarer/archetypes"
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, state components.CameraData) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, state)
	components.CameraRig.SetValue(camera, components.CameraRigData{Mode: state.Mode})
	return camera
}

// DefaultCameraState is the camera state before any preference is applied.
func DefaultCameraState() components.CameraData {
	return components.CameraData{
		Yaw:   cfg.Camera.DefaultYaw,
		Pitch: cfg.Camera.DefaultPitch,
		Zoom:  cfg.Camera.DefaultZoom,
		Mode:  cfg.CameraThirdPerson,
	}
}
