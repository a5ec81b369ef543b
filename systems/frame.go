package systems

import (
	"time"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// BeginFrame records the timing for the frame about to run. A raw delta that
// is not positive leaves DT at 0, which every integrating system treats as a
// skipped frame.
func BeginFrame(ecs *ecs.ECS, rawDT float64, now time.Time) {
	frame := GetFrame(ecs)
	frame.RawDT = rawDT
	frame.Now = now
	frame.Count++
	if dt, ok := gamemath.ClampDelta(rawDT, cfg.Movement.MaxDelta); ok {
		frame.DT = dt
	} else {
		frame.DT = 0
	}
}

// GetFrame returns the singleton Frame component, creating if needed.
func GetFrame(ecs *ecs.ECS) *components.FrameData {
	entry, ok := components.Frame.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Frame))
	}
	return components.Frame.Get(entry)
}
