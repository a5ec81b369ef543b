package scenes

import (
	"math"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	joystickRadius = 60.0 // Touch joystick travel in pixels
	stickDeadzone  = 0.15
)

type touchRole int

const (
	touchJoystick touchRole = iota
	touchLook
)

type touchState struct {
	role         touchRole
	startX       int
	startY       int
	lastX, lastY int
	dx, dy       int
}

// EventSink receives the raw events sampled from devices.
type EventSink interface {
	PushEvent(ev components.RawEvent)
}

// Devices samples ebiten's keyboard, mouse, touch and gamepad state once per
// tick and turns it into raw events.
type Devices struct {
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	gamepads []ebiten.GamepadID

	touches   map[ebiten.TouchID]*touchState
	pinchDist float64

	cursorX, cursorY int
	locked           bool
	stickActive      bool
}

func NewDevices() *Devices {
	return &Devices{touches: make(map[ebiten.TouchID]*touchState)}
}

// Poll pushes this tick's events into sink. locked is the simulation's view
// of pointer capture, which Escape may have released.
func (d *Devices) Poll(sink EventSink, locked bool) {
	d.syncCapture(sink, locked)
	d.pollKeys(sink)
	d.pollPointer(sink)
	d.pollTouches(sink)
	d.pollGamepad(sink)
}

func (d *Devices) pollKeys(sink EventSink) {
	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, k := range d.keys {
		sink.PushEvent(components.RawEvent{Kind: components.KeyDown, Key: k.String()})
	}
	d.keys = inpututil.AppendJustReleasedKeys(d.keys[:0])
	for _, k := range d.keys {
		sink.PushEvent(components.RawEvent{Kind: components.KeyUp, Key: k.String()})
	}
}

// syncCapture keeps ebiten's cursor mode and the simulation's pointer lock
// in agreement. A click captures; the simulation decides when to release.
func (d *Devices) syncCapture(sink EventSink, locked bool) {
	if d.locked && !locked {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	d.locked = locked

	captured := ebiten.CursorMode() == ebiten.CursorModeCaptured
	if d.locked && !captured {
		// Lost focus or the platform released capture
		d.locked = false
		sink.PushEvent(components.RawEvent{Kind: components.PointerLock, Locked: false})
		return
	}
	if !d.locked && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		d.locked = true
		d.cursorX, d.cursorY = ebiten.CursorPosition()
		sink.PushEvent(components.RawEvent{Kind: components.PointerLock, Locked: true})
	}
}

func (d *Devices) pollPointer(sink EventSink) {
	x, y := ebiten.CursorPosition()
	dx, dy := x-d.cursorX, y-d.cursorY
	d.cursorX, d.cursorY = x, y
	if d.locked && (dx != 0 || dy != 0) {
		sink.PushEvent(components.RawEvent{Kind: components.PointerMove, DX: float64(dx), DY: float64(dy)})
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		sink.PushEvent(components.RawEvent{Kind: components.Wheel, DY: wy})
	}
}

// pollTouches treats a touch starting on the left half of the screen as the
// virtual joystick and touches on the right half as look drags. Two look
// touches pinch.
func (d *Devices) pollTouches(sink EventSink) {
	width := cfg.C.Width
	d.touchIDs = inpututil.AppendJustPressedTouchIDs(d.touchIDs[:0])
	for _, id := range d.touchIDs {
		x, y := ebiten.TouchPosition(id)
		role := touchLook
		if x < width/2 && !d.hasRole(touchJoystick) {
			role = touchJoystick
		}
		d.touches[id] = &touchState{role: role, startX: x, startY: y, lastX: x, lastY: y}
	}

	d.touchIDs = inpututil.AppendJustReleasedTouchIDs(d.touchIDs[:0])
	for _, id := range d.touchIDs {
		if t, ok := d.touches[id]; ok && t.role == touchJoystick {
			sink.PushEvent(components.RawEvent{Kind: components.TouchEnd})
		}
		delete(d.touches, id)
		d.pinchDist = 0
	}

	var look []*touchState
	for id, t := range d.touches {
		x, y := ebiten.TouchPosition(id)
		switch t.role {
		case touchJoystick:
			jx := float64(x-t.startX) / joystickRadius
			jy := float64(y-t.startY) / joystickRadius
			sink.PushEvent(components.RawEvent{Kind: components.Joystick, X: jx, Y: jy})
		case touchLook:
			t.dx, t.dy = x-t.lastX, y-t.lastY
			look = append(look, t)
		}
		t.lastX, t.lastY = x, y
	}

	if len(look) == 1 {
		if t := look[0]; t.dx != 0 || t.dy != 0 {
			sink.PushEvent(components.RawEvent{Kind: components.TouchMove, DX: float64(t.dx), DY: float64(t.dy)})
		}
		return
	}
	if len(look) != 2 {
		return
	}
	dist := math.Hypot(float64(look[0].lastX-look[1].lastX), float64(look[0].lastY-look[1].lastY))
	if d.pinchDist > 0 {
		sink.PushEvent(components.RawEvent{Kind: components.Pinch, DY: dist - d.pinchDist})
	}
	d.pinchDist = dist
}

func (d *Devices) hasRole(role touchRole) bool {
	for _, t := range d.touches {
		if t.role == role {
			return true
		}
	}
	return false
}

// pollGamepad maps the first standard gamepad's left stick onto the joystick.
func (d *Devices) pollGamepad(sink EventSink) {
	if d.hasRole(touchJoystick) {
		return
	}
	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	for _, id := range d.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(x) < stickDeadzone && math.Abs(y) < stickDeadzone {
			if d.stickActive {
				d.stickActive = false
				sink.PushEvent(components.RawEvent{Kind: components.TouchEnd})
			}
			return
		}
		d.stickActive = true
		sink.PushEvent(components.RawEvent{Kind: components.Joystick, X: x, Y: y})
		return
	}
}
