package systems

import (
	"log"
	"slices"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/gamemath"
	"github.com/automoto/wayfarer/systems/factory"
	"github.com/automoto/wayfarer/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SubscribeEvents attaches the simulation's handlers to w. Every call must be
// paired with UnsubscribeEvents before w is dropped.
func SubscribeEvents(w donburi.World) {
	components.PauseRequested.Subscribe(w, onPauseRequested)
	components.ZoomChanged.Subscribe(w, onZoomChanged)
	components.PlayerReset.Subscribe(w, onPlayerReset)
	components.ManualAnimationSelect.Subscribe(w, onManualAnimationSelect)
}

func UnsubscribeEvents(w donburi.World) {
	components.PauseRequested.Unsubscribe(w, onPauseRequested)
	components.ZoomChanged.Unsubscribe(w, onZoomChanged)
	components.PlayerReset.Unsubscribe(w, onPlayerReset)
	components.ManualAnimationSelect.Unsubscribe(w, onManualAnimationSelect)
}

// ProcessEvents delivers everything published since the last frame.
// Runs after UpdateInput so Escape takes effect in the same frame.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

func onPauseRequested(w donburi.World, e components.PauseRequestedEvent) {
	entry, ok := components.Pause.First(w)
	if !ok {
		return
	}
	pause := components.Pause.Get(entry)
	pause.IsPaused = e.Paused
	pause.Pending = append(pause.Pending, e)
}

func onZoomChanged(w donburi.World, e components.ZoomChangedEvent) {
	entry, ok := tags.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	camera.Zoom = gamemath.Clamp(camera.Zoom+e.Delta, 0, 1)
}

func onPlayerReset(w donburi.World, e components.PlayerResetEvent) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	wasGrounded := player.OnGround
	player.Position = e.Spawn
	player.Velocity = mgl64.Vec3{}
	player.OnGround = e.Spawn.Y() <= cfg.Movement.GroundLevel+cfg.Movement.GroundEpsilon
	player.Landed = player.OnGround && !wasGrounded

	if col, ok := components.Collision.First(w); ok {
		components.Collision.Get(col).World.Move(tags.PlayerBodyID, factory.BodyCenter(e.Spawn))
	}
	if cam, ok := tags.Camera.First(w); ok {
		components.CameraRig.Get(cam).Initialized = false
	}
}

func onManualAnimationSelect(w donburi.World, e components.ManualAnimationSelectEvent) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	anim := components.Animation.Get(entry)
	if !slices.Contains(anim.Clips, e.Clip) {
		log.Printf("Warning: manual animation %q is not a clip of this avatar", e.Clip)
		return
	}
	anim.Manual = true
	anim.ManualClip = e.Clip
	anim.Mixer.Play(e.Clip, cfg.LoopRepeat)
	components.Player.Get(entry).Animation.Clip = e.Clip
}
