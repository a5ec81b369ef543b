package components

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/features/events"
)

// PauseRequestedEvent is emitted when Escape asks for the menu.
// Paused is the state being requested.
type PauseRequestedEvent struct {
	Paused bool
	At     time.Time
}

// ZoomChangedEvent adjusts camera zoom by Delta.
type ZoomChangedEvent struct {
	Delta float64
}

// PlayerResetEvent moves the player to Spawn and stops it.
type PlayerResetEvent struct {
	Spawn mgl64.Vec3
}

// ManualAnimationSelectEvent pins Clip until movement input resumes.
type ManualAnimationSelectEvent struct {
	Clip string
}

// The complete set of events crossing the simulation boundary.
var (
	PauseRequested        = events.NewEventType[PauseRequestedEvent]()
	ZoomChanged           = events.NewEventType[ZoomChangedEvent]()
	PlayerReset           = events.NewEventType[PlayerResetEvent]()
	ManualAnimationSelect = events.NewEventType[ManualAnimationSelectEvent]()
)
