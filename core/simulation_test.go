package core

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/automoto/wayfarer/assets"
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/stagedata"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func testStages() stagedata.MapProvider {
	return stagedata.MapProvider{
		"plain": {
			ID:     "plain",
			Spawn:  stagedata.Vec3{X: 0, Y: 0, Z: 0},
			Bounds: stagedata.Bounds{MinX: -30, MinZ: -30, MaxX: 30, MaxZ: 30},
			Collectibles: []stagedata.Collectible{
				{ID: "plain/gem", Position: stagedata.Vec3{X: 0, Y: 0.4, Z: -6}, Value: 5},
			},
		},
		"yard": {
			ID:     "yard",
			Spawn:  stagedata.Vec3{X: 2, Y: 0, Z: 2},
			Bounds: stagedata.Bounds{MinX: -10, MinZ: -10, MaxX: 10, MaxZ: 10},
			Primitives: []stagedata.Primitive{
				{ID: "yard/shed", Kind: stagedata.KindBuilding, Shape: stagedata.ShapeBox,
					Position: stagedata.Vec3{X: 0, Y: 1, Z: -4}, Size: stagedata.Vec3{X: 2, Y: 1, Z: 1}},
			},
		},
	}
}

func newTestSim(t *testing.T, stage string) (*Simulation, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	sim := New(Options{
		Stages: testStages(),
		Clips:  assets.StaticClips{"Idle", "Walk", "Run", "Jump"},
		Now:    clock.Now,
	})
	if err := sim.Init(stage); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(sim.Teardown)
	return sim, clock
}

func stepN(s *Simulation, clock *fakeClock, n int) {
	for i := 0; i < n; i++ {
		clock.advance(time.Second / 60)
		s.Update(1.0 / 60)
	}
}

func press(sim *Simulation, key string) {
	sim.PushEvent(components.RawEvent{Kind: components.KeyDown, Key: key})
}

func release(sim *Simulation, key string) {
	sim.PushEvent(components.RawEvent{Kind: components.KeyUp, Key: key})
}

func TestInitUnknownStage(t *testing.T) {
	sim := New(Options{Stages: testStages()})
	defer sim.Teardown()

	err := sim.Init("nowhere")
	if !errors.Is(err, stagedata.ErrUnknownStage) {
		t.Fatalf("Init error = %v, want ErrUnknownStage", err)
	}
	if _, ok := sim.Player(); ok {
		t.Error("player exists after failed init")
	}
	sim.Update(1.0 / 60) // must not panic
}

func TestWalkAt60Hz(t *testing.T) {
	sim, clock := newTestSim(t, "plain")
	press(sim, "W")

	for i := 0; i < 120; i++ {
		stepN(sim, clock, 1)
		p, _ := sim.Player()
		if speed := math.Hypot(p.Velocity.X(), p.Velocity.Z()); speed > 4+1e-9 {
			t.Fatalf("frame %d overshoots: %v", i, speed)
		}
	}
	p, _ := sim.Player()
	if math.Abs(p.Velocity.Z()+4) > 1e-6 {
		t.Errorf("velocity = %v, want 4 along -Z", p.Velocity)
	}
	if got := sim.Inventory(); got.Items != 1 || got.Value != 5 {
		t.Errorf("inventory = %+v, want the gem on the path", got)
	}
}

func TestClipsLoadAndAnimate(t *testing.T) {
	sim, clock := newTestSim(t, "plain")

	deadline := time.Now().Add(2 * time.Second)
	for {
		stepN(sim, clock, 1)
		p, _ := sim.Player()
		if p.Animation.Clip == "Idle" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("clips never arrived, animation %+v", p.Animation)
		}
		time.Sleep(time.Millisecond)
	}

	press(sim, "W")
	stepN(sim, clock, 1)
	if p, _ := sim.Player(); p.Animation.Clip != "Walk" {
		t.Errorf("clip = %q, want Walk", p.Animation.Clip)
	}

	sim.SelectAnimation("Jump")
	stepN(sim, clock, 5)
	if p, _ := sim.Player(); p.Animation.Clip != "Jump" {
		t.Errorf("clip = %q, want manual Jump", p.Animation.Clip)
	}
}

func TestZoomRequestSetsDistance(t *testing.T) {
	sim, clock := newTestSim(t, "plain")
	sim.Camera().Zoom = 0
	sim.RequestZoom(0.3)
	stepN(sim, clock, 1)

	if got := sim.Rig().Distance; math.Abs(got-15.72) > 1e-9 {
		t.Errorf("distance = %v, want 15.72", got)
	}
}

func TestEscapeFlow(t *testing.T) {
	sim, clock := newTestSim(t, "plain")
	sim.PushEvent(components.RawEvent{Kind: components.PointerLock, Locked: true})
	stepN(sim, clock, 1)

	tap := func() {
		press(sim, "Escape")
		stepN(sim, clock, 1)
		release(sim, "Escape")
		stepN(sim, clock, 1)
	}

	tap()
	if sim.Camera().PointerLocked || sim.Paused() {
		t.Fatal("first escape should only release capture")
	}
	clock.advance(100 * time.Millisecond)
	tap()
	if !sim.Paused() {
		t.Fatal("second escape should pause")
	}
	if reqs := sim.TakePauseRequests(); len(reqs) != 1 || !reqs[0].Paused {
		t.Errorf("requests = %+v", reqs)
	}

	sim.SetPaused(false)
	press(sim, "W")
	stepN(sim, clock, 10)
	if p, _ := sim.Player(); p.Position.Z() >= 0 {
		t.Error("simulation did not resume after SetPaused(false)")
	}
}

func TestResetAndReload(t *testing.T) {
	sim, clock := newTestSim(t, "yard")
	p, _ := sim.Player()
	if p.Position != (mgl64.Vec3{2, 0, 2}) {
		t.Fatalf("spawn = %v", p.Position)
	}

	press(sim, "A")
	stepN(sim, clock, 30)
	sim.RequestReset()
	release(sim, "A")
	stepN(sim, clock, 1)
	p, _ = sim.Player()
	if math.Abs(p.Position.X()-2) > 1e-9 || p.Position.Z() != 2 {
		t.Errorf("after reset position = %v", p.Position)
	}

	if err := sim.LoadStage("plain"); err != nil {
		t.Fatalf("LoadStage: %v", err)
	}
	col, ok := sim.Collision()
	if !ok || col.StageID != "plain" {
		t.Fatalf("collision stage = %+v", col)
	}
	// Player plus the gem
	if got := col.World.Len(); got != 2 {
		t.Errorf("registry holds %d objects, want 2", got)
	}
	if err := sim.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := sim.Inventory(); got.Items != 0 {
		t.Errorf("inventory after reset = %+v", got)
	}
}

func TestTeardownSavesPrefs(t *testing.T) {
	store := memStore{}
	sim := New(Options{Stages: testStages(), Prefs: store})
	if err := sim.Init("plain"); err != nil {
		t.Fatal(err)
	}
	sim.Camera().Zoom = 0.2
	sim.Camera().Mode = cfg.CameraFirstPerson
	sim.Teardown()
	sim.Teardown()

	if err := sim.Init("plain"); !errors.Is(err, ErrTornDown) {
		t.Errorf("Init after teardown = %v", err)
	}

	next := New(Options{Stages: testStages(), Prefs: store})
	if err := next.Init("plain"); err != nil {
		t.Fatal(err)
	}
	defer next.Teardown()
	if got := next.Camera(); got.Zoom != 0.2 || got.Mode != cfg.CameraFirstPerson {
		t.Errorf("restored camera = %+v", got)
	}
}

func TestGameLoopRunsTicks(t *testing.T) {
	sim, _ := newTestSim(t, "plain")
	loop := NewGameLoop(sim, 200)

	var ticks uint64
	loop.OnTick = func(_ *Simulation, tick uint64) {
		ticks = tick
	}
	loop.Run(5)
	loop.Stop()

	if ticks != 5 {
		t.Errorf("ticks = %d, want 5", ticks)
	}
}
