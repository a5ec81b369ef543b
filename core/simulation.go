// Package core owns one avatar simulation: the donburi world, the fixed
// system order and the stage lifecycle.
package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/automoto/wayfarer/assets"
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/stagedata"
	"github.com/automoto/wayfarer/systems"
	"github.com/automoto/wayfarer/systems/factory"
	"github.com/automoto/wayfarer/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNotInitialized = errors.New("simulation not initialized")
	ErrTornDown       = errors.New("simulation torn down")
)

// Options are the collaborators a simulation is built from.
type Options struct {
	Stages stagedata.Provider

	// Clips supplies the avatar's clip names. Nil keeps the configured
	// default list.
	Clips     assets.ClipSource
	Durations map[string]float64

	Avatar components.AvatarData

	// Prefs persists camera preferences. Nil disables persistence.
	Prefs systems.PrefStore

	// Now is the clock used for input timing. Defaults to time.Now.
	Now func() time.Time
}

// Simulation drives one player through one stage at a time.
type Simulation struct {
	ecs  *ecs.ECS
	opts Options

	stageID string
	ready   bool
	closed  bool
}

func New(opts Options) *Simulation {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Avatar.Scale <= 0 {
		opts.Avatar = components.AvatarData{
			Scale:        cfg.Avatar.Scale,
			HeightOffset: cfg.Avatar.HeightOffset,
		}
	}
	return &Simulation{opts: opts}
}

// Init builds the world and loads stageID.
func (s *Simulation) Init(stageID string) error {
	if s.closed {
		return ErrTornDown
	}
	if s.ecs == nil {
		s.configure()
	}
	return s.LoadStage(stageID)
}

func (s *Simulation) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.ProcessEvents)

	// Gameplay systems, frozen while the menu is up
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCameraControl))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollectibles))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateAnimation))

	// Camera last so it sees this frame's movement, paused or not
	e.AddSystem(systems.UpdateCamera)

	systems.SubscribeEvents(e.World)

	state := factory.DefaultCameraState()
	if prefs, err := systems.LoadCameraPrefs(s.opts.Prefs); err == nil {
		systems.ApplyCameraPrefs(&state, prefs)
	}
	factory.CreateCamera(e, state)
	systems.GetOrCreatePause(e)
	systems.GetFrame(e)

	s.ecs = e
}

// LoadStage replaces the current stage, its collectibles and the player.
// Camera state survives the switch.
func (s *Simulation) LoadStage(stageID string) error {
	if s.closed {
		return ErrTornDown
	}
	if s.ecs == nil {
		return ErrNotInitialized
	}
	if s.opts.Stages == nil {
		return fmt.Errorf("load stage %s: no stage provider", stageID)
	}
	data, err := s.opts.Stages.Stage(stageID)
	if err != nil {
		return fmt.Errorf("load stage %s: %w", stageID, err)
	}

	s.unloadStage()

	stage, err := factory.CreateStage(s.ecs, data, systems.CollectItem)
	if err != nil {
		s.unloadStage()
		return err
	}
	col := components.Collision.Get(stage)

	player, err := factory.CreatePlayer(s.ecs, col.World, col.Spawn, s.opts.Avatar)
	if err != nil {
		s.unloadStage()
		return err
	}
	anim := components.Animation.Get(player)
	for clip, d := range s.opts.Durations {
		anim.Mixer.SetDuration(clip, d)
	}
	if s.opts.Clips != nil {
		anim.Pending = assets.LoadClips(context.Background(), s.opts.Clips, cfg.Assets.MetadataTimeout)
	}

	if rig, ok := components.CameraRig.First(s.ecs.World); ok {
		components.CameraRig.Get(rig).Initialized = false
	}

	s.stageID = stageID
	s.ready = true
	log.Printf("Loaded stage %s: %d primitives, %d collectibles", stageID, len(data.Primitives), len(data.Collectibles))
	return nil
}

// unloadStage releases everything tied to the current stage.
func (s *Simulation) unloadStage() {
	w := s.ecs.World

	if entry, ok := tags.Player.First(w); ok {
		if anim := components.Animation.Get(entry); anim.Pending != nil {
			anim.Pending.Cancel()
		}
	}

	var doomed []donburi.Entity
	collect := func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	}
	tags.Player.Each(w, collect)
	tags.Collectible.Each(w, collect)
	tags.Stage.Each(w, collect)

	if entry, ok := tags.Stage.First(w); ok {
		col := components.Collision.Get(entry)
		if col.Stage != nil {
			col.Stage.Close()
		}
		if col.World != nil {
			col.World.Clear()
		}
	}
	for _, entity := range doomed {
		w.Remove(entity)
	}
	s.ready = false
}

// Reset reloads the current stage from scratch.
func (s *Simulation) Reset() error {
	if s.stageID == "" {
		return ErrNotInitialized
	}
	return s.LoadStage(s.stageID)
}

// Update advances the simulation by dt seconds. Deltas that are not
// positive advance input and events but nothing that integrates.
func (s *Simulation) Update(dt float64) {
	if !s.ready || s.closed {
		return
	}
	systems.BeginFrame(s.ecs, dt, s.opts.Now())
	s.ecs.Update()
}

// Teardown releases event subscriptions, stage resources and pending loads.
// The simulation cannot be used afterwards.
func (s *Simulation) Teardown() {
	if s.closed {
		return
	}
	s.closed = true
	if s.ecs == nil {
		return
	}
	if err := systems.SaveCameraPrefs(s.opts.Prefs, s.ecs); err != nil {
		log.Printf("Warning: camera preferences not saved: %v", err)
	}
	s.unloadStage()
	systems.UnsubscribeEvents(s.ecs.World)
}

// PushEvent queues a device signal for the next frame.
func (s *Simulation) PushEvent(ev components.RawEvent) {
	if s.ecs == nil || s.closed {
		return
	}
	systems.QueueRawEvent(s.ecs, ev)
}

// RequestZoom publishes a zoom-changed event.
func (s *Simulation) RequestZoom(delta float64) {
	if s.ecs == nil || s.closed {
		return
	}
	components.ZoomChanged.Publish(s.ecs.World, components.ZoomChangedEvent{Delta: delta})
}

// RequestReset publishes a player-reset event to the stage spawn.
func (s *Simulation) RequestReset() {
	if !s.ready {
		return
	}
	col, _ := systems.GetCollision(s.ecs)
	s.RequestResetTo(col.Spawn)
}

// RequestResetTo publishes a player-reset event to spawn.
func (s *Simulation) RequestResetTo(spawn mgl64.Vec3) {
	if s.ecs == nil || s.closed {
		return
	}
	components.PlayerReset.Publish(s.ecs.World, components.PlayerResetEvent{Spawn: spawn})
}

// SelectAnimation publishes a manual-animation-select event.
func (s *Simulation) SelectAnimation(clip string) {
	if s.ecs == nil || s.closed {
		return
	}
	components.ManualAnimationSelect.Publish(s.ecs.World, components.ManualAnimationSelectEvent{Clip: clip})
}

// TakePauseRequests drains the pause requests emitted since the last call.
func (s *Simulation) TakePauseRequests() []components.PauseRequestedEvent {
	if s.ecs == nil {
		return nil
	}
	return systems.TakePauseRequests(s.ecs)
}

func (s *Simulation) SetPaused(paused bool) {
	if s.ecs == nil {
		return
	}
	systems.SetPaused(s.ecs, paused)
}

func (s *Simulation) Paused() bool {
	if s.ecs == nil {
		return false
	}
	return systems.GetOrCreatePause(s.ecs).IsPaused
}

// Player returns the player state. It is owned by the simulation; callers
// must not modify it.
func (s *Simulation) Player() (*components.PlayerData, bool) {
	if !s.ready {
		return nil, false
	}
	return systems.GetPlayer(s.ecs)
}

// Inventory returns what the player has collected on this stage.
func (s *Simulation) Inventory() components.InventoryData {
	if !s.ready {
		return components.InventoryData{}
	}
	entry, ok := tags.Player.First(s.ecs.World)
	if !ok {
		return components.InventoryData{}
	}
	return *components.Inventory.Get(entry)
}

func (s *Simulation) Camera() *components.CameraData {
	return systems.GetOrCreateCamera(s.ecs)
}

func (s *Simulation) Rig() *components.CameraRigData {
	entry, _ := tags.Camera.First(s.ecs.World)
	return components.CameraRig.Get(entry)
}

func (s *Simulation) Collision() (*components.CollisionData, bool) {
	if !s.ready {
		return nil, false
	}
	return systems.GetCollision(s.ecs)
}

func (s *Simulation) StageID() string {
	return s.stageID
}

// ECS exposes the world for renderers.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}
