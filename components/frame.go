package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FrameData carries the timing of the frame being simulated.
type FrameData struct {
	DT    float64 // Clamped delta in seconds, 0 on skipped frames
	RawDT float64
	Now   time.Time
	Count uint64
}

var Frame = donburi.NewComponentType[FrameData]()
