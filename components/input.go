package components

import (
	"github.com/automoto/wayfarer/config"
	"github.com/yohamta/donburi"
)

// RawEventKind is the kind of device signal a host reports.
type RawEventKind int

const (
	KeyDown RawEventKind = iota
	KeyUp
	PointerMove // DX, DY in pointer units
	TouchMove   // DX, DY in pixels of drag
	TouchEnd
	Wheel       // DY, positive scrolls toward the scene
	Pinch       // DY, positive spreads the fingers
	Joystick    // X right, Y down, each in [-1,1]
	PointerLock // Locked
)

// RawEvent is one device signal queued by the host between frames.
type RawEvent struct {
	Kind   RawEventKind
	Key    string
	DX, DY float64
	X, Y   float64
	Locked bool
}

// RawInputData queues raw events until the input system drains them.
type RawInputData struct {
	Events []RawEvent
}

var RawInput = donburi.NewComponentType[RawInputData]()

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the per-frame camera deltas.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [config.ActionCount]bool // Current frame's Pressed state
	Previous [config.ActionCount]bool // Previous frame's Pressed state

	Held      map[string]bool // Keys currently down
	JoystickX float64
	JoystickY float64

	LookDX    float64 // Yaw delta in radians for this frame
	LookDY    float64 // Pitch delta in radians for this frame
	ZoomDelta float64
}

var Input = donburi.NewComponentType[InputData]()
