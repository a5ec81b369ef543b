package systems

import (
	"github.com/automoto/wayfarer/components"
	"github.com/yohamta/donburi/ecs"
)

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// SetPaused is how the shell resumes after showing its menu.
func SetPaused(e *ecs.ECS, paused bool) {
	GetOrCreatePause(e).IsPaused = paused
}

// TakePauseRequests returns and clears the pause requests emitted since the
// last call.
func TakePauseRequests(e *ecs.ECS) []components.PauseRequestedEvent {
	pause := GetOrCreatePause(e)
	out := pause.Pending
	pause.Pending = nil
	return out
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
