package components

import (
	"github.com/automoto/wayfarer/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the user-controlled camera state. Zoom is in [0,1], 0 far.
type CameraData struct {
	Yaw           float64
	Pitch         float64
	Zoom          float64
	Mode          config.CameraMode
	PointerLocked bool
}

var Camera = donburi.NewComponentType[CameraData]()

// CameraRigData is the view transform derived from player and camera state
// every frame.
type CameraRigData struct {
	Position    mgl64.Vec3
	Target      mgl64.Vec3
	Up          mgl64.Vec3
	View        mgl64.Mat4
	Distance    float64
	Mode        config.CameraMode // Mode the rig was last computed for
	Initialized bool
}

var CameraRig = donburi.NewComponentType[CameraRigData]()
