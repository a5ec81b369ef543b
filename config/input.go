package config

import "time"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionJump
	ActionSprint
	ActionCycleCamera
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionForward:     "forward",
	ActionBackward:    "backward",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionJump:        "jump",
	ActionSprint:      "sprint",
	ActionCycleCamera: "cycle_camera",
	ActionPause:       "pause",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName looks up an action by its configuration name.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}

// InputConfig holds all input mappings and device normalization constants.
// Key names follow ebiten's Key.String() spelling so the host can map
// device keys without the core importing ebiten.
type InputConfig struct {
	Bindings map[ActionID][]string

	PointerSensitivity float64 // Radians per pointer unit
	TouchSensitivity   float64 // Radians per touch-drag pixel
	MaxPointerDelta    float64 // Samples beyond this on either axis are discarded
	JoystickThreshold  float64 // Per-axis magnitude that counts as a direction key
	WheelSensitivity   float64 // Zoom per wheel unit
	PinchSensitivity   float64 // Zoom per pinch pixel
	EscapeDebounce     time.Duration
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]string{
			ActionForward:     {"W", "ArrowUp"},
			ActionBackward:    {"S", "ArrowDown"},
			ActionLeft:        {"A", "ArrowLeft"},
			ActionRight:       {"D", "ArrowRight"},
			ActionJump:        {"Space"},
			ActionSprint:      {"ShiftLeft", "ShiftRight"},
			ActionCycleCamera: {"V"},
			ActionPause:       {"Escape"},
		},
		PointerSensitivity: 0.002,
		TouchSensitivity:   0.005,
		MaxPointerDelta:    100,
		JoystickThreshold:  0.5,
		WheelSensitivity:   0.05,
		PinchSensitivity:   0.004,
		EscapeDebounce:     500 * time.Millisecond,
	}
}
