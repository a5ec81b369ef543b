package config

// CameraMode selects how the camera follows the player.
type CameraMode int

const (
	CameraThirdPerson CameraMode = iota
	CameraFirstPerson
	CameraDrone
	cameraModeCount
)

var cameraModeNames = [cameraModeCount]string{"thirdPerson", "firstPerson", "drone"}

func (m CameraMode) String() string {
	if m < 0 || m >= cameraModeCount {
		return "unknown"
	}
	return cameraModeNames[m]
}

// Next returns the mode that follows m in the cycle order.
func (m CameraMode) Next() CameraMode {
	return (m + 1) % cameraModeCount
}

// ParseCameraMode returns the mode with the given name, defaulting to third person.
func ParseCameraMode(name string) CameraMode {
	for i, n := range cameraModeNames {
		if n == name {
			return CameraMode(i)
		}
	}
	return CameraThirdPerson
}

// AnimationCategory is the coarse movement state that drives clip selection.
type AnimationCategory string

const (
	CategoryIdle    AnimationCategory = "idle"
	CategoryWalking AnimationCategory = "walking"
	CategoryRunning AnimationCategory = "running"
	CategoryJumping AnimationCategory = "jumping"
)

// LoopMode describes how a clip behaves when it reaches its end.
type LoopMode int

const (
	LoopRepeat LoopMode = iota
	LoopOnce            // Plays once and clamps at the last frame
)
