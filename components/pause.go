package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PauseData stores the pause state and the Escape timing it depends on.
type PauseData struct {
	IsPaused       bool
	LockReleasedAt time.Time // When Escape last released pointer capture
	LastRequestAt  time.Time // When pause-requested was last emitted

	// Requests emitted since the host last drained them
	Pending []PauseRequestedEvent
}

var Pause = donburi.NewComponentType[PauseData]()
