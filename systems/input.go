package systems

import (
	"math"
	"time"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/yohamta/donburi/ecs"
)

// QueueRawEvent appends a device signal for the next UpdateInput.
func QueueRawEvent(ecs *ecs.ECS, ev components.RawEvent) {
	raw := getOrCreateRawInput(ecs)
	raw.Events = append(raw.Events, ev)
}

// UpdateInput drains the raw event queue into action state and camera deltas.
// Must run BEFORE every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	raw := getOrCreateRawInput(ecs)
	camera := GetOrCreateCamera(ecs)
	pause := GetOrCreatePause(ecs)
	now := GetFrame(ecs).Now

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.LookDX, input.LookDY, input.ZoomDelta = 0, 0, 0

	for _, ev := range raw.Events {
		applyRawEvent(ecs, input, camera, pause, ev, now)
	}
	raw.Events = raw.Events[:0]

	for actionID, keys := range cfg.Input.Bindings {
		for _, key := range keys {
			if input.Held[key] {
				input.Current[actionID] = true
				break
			}
		}
	}

	// Merge the virtual joystick into directional actions
	threshold := cfg.Input.JoystickThreshold
	if input.JoystickX < -threshold {
		input.Current[cfg.ActionLeft] = true
	}
	if input.JoystickX > threshold {
		input.Current[cfg.ActionRight] = true
	}
	if input.JoystickY < -threshold {
		input.Current[cfg.ActionForward] = true
	}
	if input.JoystickY > threshold {
		input.Current[cfg.ActionBackward] = true
	}

	if player, ok := GetPlayer(ecs); ok {
		player.Inputs = MoveFlagsFrom(input)
	}
}

func applyRawEvent(ecs *ecs.ECS, input *components.InputData, camera *components.CameraData, pause *components.PauseData, ev components.RawEvent, now time.Time) {
	switch ev.Kind {
	case components.KeyDown:
		if input.Held[ev.Key] {
			// Key repeat
			return
		}
		input.Held[ev.Key] = true
		if isBound(cfg.ActionPause, ev.Key) {
			handleEscape(ecs, camera, pause, now)
		}
	case components.KeyUp:
		delete(input.Held, ev.Key)
	case components.PointerMove:
		if !camera.PointerLocked {
			return
		}
		max := cfg.Input.MaxPointerDelta
		if math.Abs(ev.DX) > max || math.Abs(ev.DY) > max {
			return
		}
		input.LookDX += ev.DX * cfg.Input.PointerSensitivity
		input.LookDY += ev.DY * cfg.Input.PointerSensitivity
	case components.TouchMove:
		input.LookDX += ev.DX * cfg.Input.TouchSensitivity
		input.LookDY += ev.DY * cfg.Input.TouchSensitivity
	case components.TouchEnd:
		input.JoystickX, input.JoystickY = 0, 0
	case components.Wheel:
		input.ZoomDelta += ev.DY * cfg.Input.WheelSensitivity
	case components.Pinch:
		input.ZoomDelta += ev.DY * cfg.Input.PinchSensitivity
	case components.Joystick:
		input.JoystickX = clampUnit(ev.X)
		input.JoystickY = clampUnit(ev.Y)
	case components.PointerLock:
		if camera.PointerLocked && !ev.Locked {
			pause.LockReleasedAt = now
		}
		camera.PointerLocked = ev.Locked
	}
}

// handleEscape implements the two-step Escape: the first press while the
// pointer is captured only releases capture and opens the escape window. A
// press with capture released, or inside the window even if the host has
// captured the pointer again meanwhile, asks for the menu. Presses inside
// the debounce window after a request are dropped.
func handleEscape(ecs *ecs.ECS, camera *components.CameraData, pause *components.PauseData, now time.Time) {
	debounce := cfg.Input.EscapeDebounce
	if !pause.LastRequestAt.IsZero() && now.Sub(pause.LastRequestAt) < debounce {
		return
	}
	if camera.PointerLocked {
		camera.PointerLocked = false
		if !escapeWindowOpen(pause, now) {
			pause.LockReleasedAt = now
			return
		}
	}
	pause.LastRequestAt = now
	components.PauseRequested.Publish(ecs.World, components.PauseRequestedEvent{
		Paused: !pause.IsPaused,
		At:     now,
	})
}

// escapeWindowOpen reports whether a second Escape right now would be the
// quick double press that follows releasing capture.
func escapeWindowOpen(pause *components.PauseData, now time.Time) bool {
	return !pause.LockReleasedAt.IsZero() && now.Sub(pause.LockReleasedAt) < cfg.Input.EscapeDebounce
}

func isBound(action cfg.ActionID, key string) bool {
	for _, k := range cfg.Input.Bindings[action] {
		if k == key {
			return true
		}
	}
	return false
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// MoveFlagsFrom packs the movement actions into the player's input bitset.
func MoveFlagsFrom(input *components.InputData) components.MoveFlags {
	var f components.MoveFlags
	pairs := []struct {
		action cfg.ActionID
		flag   components.MoveFlags
	}{
		{cfg.ActionForward, components.MoveForward},
		{cfg.ActionBackward, components.MoveBackward},
		{cfg.ActionLeft, components.MoveLeft},
		{cfg.ActionRight, components.MoveRight},
		{cfg.ActionJump, components.MoveJump},
		{cfg.ActionSprint, components.MoveSprint},
	}
	for _, p := range pairs {
		if input.Current[p.action] {
			f |= p.flag
		}
	}
	return f
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	input := components.Input.Get(entry)
	if input.Held == nil {
		input.Held = make(map[string]bool)
	}
	return input
}

func getOrCreateRawInput(ecs *ecs.ECS) *components.RawInputData {
	entry, ok := components.RawInput.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.RawInput))
	}
	return components.RawInput.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
