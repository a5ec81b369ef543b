package systems

import (
	"testing"
	"time"

	"github.com/automoto/wayfarer/components"
	"github.com/automoto/wayfarer/shared/stagedata"
	"github.com/automoto/wayfarer/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frameDT = 1.0 / 60

// harness is a world with a camera, a stage and a player, stepped with a
// manual clock.
type harness struct {
	t   *testing.T
	ecs *ecs.ECS
	now time.Time
}

func openStage() *stagedata.StageCollisionData {
	return &stagedata.StageCollisionData{
		ID:     "test",
		Bounds: stagedata.Bounds{MinX: -20, MinZ: -20, MaxX: 20, MaxZ: 20},
	}
}

func newHarness(t *testing.T, data *stagedata.StageCollisionData, spawn mgl64.Vec3) *harness {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	SubscribeEvents(e.World)

	factory.CreateCamera(e, factory.DefaultCameraState())
	stage, err := factory.CreateStage(e, data, CollectItem)
	if err != nil {
		t.Fatalf("CreateStage: %v", err)
	}
	col := components.Collision.Get(stage)
	t.Cleanup(func() {
		UnsubscribeEvents(e.World)
		col.Stage.Close()
	})
	if _, err := factory.CreatePlayer(e, col.World, spawn, components.AvatarData{Scale: 1}); err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	return &harness{
		t:   t,
		ecs: e,
		now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// step runs one frame of dt seconds through every system in frame order.
func (h *harness) step(dt float64) {
	if dt > 0 {
		h.now = h.now.Add(time.Duration(dt * float64(time.Second)))
	}
	BeginFrame(h.ecs, dt, h.now)
	UpdateInput(h.ecs)
	ProcessEvents(h.ecs)
	WithPauseCheck(UpdateCameraControl)(h.ecs)
	WithPauseCheck(UpdateMovement)(h.ecs)
	WithPauseCheck(UpdateCollisions)(h.ecs)
	WithPauseCheck(UpdateCollectibles)(h.ecs)
	WithPauseCheck(UpdateAnimation)(h.ecs)
	UpdateCamera(h.ecs)
}

func (h *harness) steps(n int) {
	for i := 0; i < n; i++ {
		h.step(frameDT)
	}
}

func (h *harness) key(down bool, key string) {
	kind := components.KeyUp
	if down {
		kind = components.KeyDown
	}
	QueueRawEvent(h.ecs, components.RawEvent{Kind: kind, Key: key})
}

func (h *harness) player() *components.PlayerData {
	h.t.Helper()
	p, ok := GetPlayer(h.ecs)
	if !ok {
		h.t.Fatal("no player")
	}
	return p
}

func (h *harness) camera() *components.CameraData {
	return GetOrCreateCamera(h.ecs)
}

func (h *harness) rig() *components.CameraRigData {
	entry, _ := components.CameraRig.First(h.ecs.World)
	return components.CameraRig.Get(entry)
}
