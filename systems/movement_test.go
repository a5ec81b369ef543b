package systems

import (
	"fmt"
	"math"
	"testing"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/stagedata"
	"github.com/go-gl/mathgl/mgl64"
)

func TestWalkConvergesWithoutOvershoot(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{})
	h.key(true, "W")

	for i := 0; i < 60; i++ {
		h.step(frameDT)
		v := h.player().Velocity
		speed := math.Hypot(v.X(), v.Z())
		if speed > cfg.Movement.WalkSpeed+1e-9 {
			t.Fatalf("frame %d: speed %v overshoots %v", i, speed, cfg.Movement.WalkSpeed)
		}
	}

	p := h.player()
	if math.Abs(p.Velocity.Z()+cfg.Movement.WalkSpeed) > 1e-6 {
		t.Errorf("velocity.z = %v, want %v", p.Velocity.Z(), -cfg.Movement.WalkSpeed)
	}
	if p.Velocity.X() != 0 || p.Position.X() != 0 {
		t.Errorf("drifted sideways: pos %v vel %v", p.Position, p.Velocity)
	}
	if p.Position.Z() >= -3 {
		t.Errorf("position.z = %v, expected close to one second of walking", p.Position.Z())
	}
	if !p.OnGround || p.Position.Y() != 0 {
		t.Errorf("left the ground while walking: %v onGround=%v", p.Position, p.OnGround)
	}
}

func TestSprintUsesRunSpeed(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{})
	h.key(true, "W")
	h.key(true, "ShiftLeft")
	h.steps(60)

	if got := -h.player().Velocity.Z(); math.Abs(got-cfg.Movement.RunSpeed) > 1e-6 {
		t.Errorf("speed = %v, want %v", got, cfg.Movement.RunSpeed)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	if got := InputDirection(components.MoveForward|components.MoveBackward, 0.7); got != (mgl64.Vec3{}) {
		t.Errorf("direction = %v, want zero", got)
	}
	d := InputDirection(components.MoveForward|components.MoveRight, 0)
	if math.Abs(d.Len()-1) > 1e-12 {
		t.Errorf("diagonal length = %v, want 1", d.Len())
	}
}

func TestLandingIsEdgeTriggered(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{0, 2, 0})
	if h.player().OnGround {
		t.Fatal("spawned in the air but grounded")
	}

	landings := 0
	for i := 0; i < 120; i++ {
		h.step(frameDT)
		if h.player().Landed {
			landings++
		}
	}
	p := h.player()
	if landings != 1 {
		t.Errorf("landed %d times, want 1", landings)
	}
	if !p.OnGround || p.Position.Y() != 0 || p.Velocity.Y() != 0 {
		t.Errorf("after fall: pos %v vel %v onGround %v", p.Position, p.Velocity, p.OnGround)
	}
}

func TestJump(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{})
	h.step(frameDT)

	h.key(true, "Space")
	h.step(frameDT)
	p := h.player()
	want := cfg.Movement.JumpForce - cfg.Movement.Gravity*frameDT
	if p.OnGround || math.Abs(p.Velocity.Y()-want) > 1e-9 {
		t.Fatalf("after jump: vy %v onGround %v, want vy %v airborne", p.Velocity.Y(), p.OnGround, want)
	}

	// Holding jump does not jump again on landing
	landed := false
	for i := 0; i < 120; i++ {
		h.step(frameDT)
		if h.player().Landed {
			landed = true
		}
	}
	if !landed || !h.player().OnGround {
		t.Error("never landed after jump")
	}
}

func TestSkippedFrames(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{0, 2, 0})
	for _, dt := range []float64{0, -0.5, math.NaN()} {
		h.step(dt)
	}
	if got := h.player().Position; got != (mgl64.Vec3{0, 2, 0}) {
		t.Errorf("position moved on skipped frames: %v", got)
	}

	// A hitch integrates as the capped delta
	h.step(1.0)
	want := 2 - cfg.Movement.Gravity*cfg.Movement.MaxDelta*cfg.Movement.MaxDelta
	if got := h.player().Position.Y(); math.Abs(got-want) > 1e-9 {
		t.Errorf("y after hitch = %v, want %v", got, want)
	}
}

func TestWallStopsAxisAndSlides(t *testing.T) {
	stage := openStage()
	stage.Primitives = []stagedata.Primitive{{
		ID:       "test/wall",
		Kind:     stagedata.KindBuilding,
		Shape:    stagedata.ShapeBox,
		Position: stagedata.Vec3{X: 0, Y: 1.5, Z: -3},
		Size:     stagedata.Vec3{X: 5, Y: 1.5, Z: 0.5},
	}}
	h := newHarness(t, stage, mgl64.Vec3{})

	h.key(true, "W")
	h.key(true, "D")
	h.steps(75)

	p := h.player()
	face := -2.5 + cfg.Movement.Radius
	if p.Position.Z() < face-1e-9 || p.Position.Z() > face+0.1 {
		t.Errorf("z = %v, want resting against %v", p.Position.Z(), face)
	}
	if p.Velocity.Z() != 0 {
		t.Errorf("velocity.z = %v, want zeroed by the wall", p.Velocity.Z())
	}
	if p.Position.X() < 3 || p.Position.X() > 5 {
		t.Errorf("x = %v, expected sliding along the wall", p.Position.X())
	}
}

func TestWallHoldsFromAnySpawn(t *testing.T) {
	stage := openStage()
	stage.Primitives = []stagedata.Primitive{{
		ID:       "test/wall",
		Kind:     stagedata.KindBuilding,
		Shape:    stagedata.ShapeBox,
		Position: stagedata.Vec3{X: 0, Y: 1.5, Z: -3},
		Size:     stagedata.Vec3{X: 5, Y: 1.5, Z: 0.5},
	}}

	for _, x := range []float64{-1.3, -0.5, 0, 0.25, 0.5, 0.75, 1, 1.9, 2.5} {
		t.Run(fmt.Sprintf("x=%v", x), func(t *testing.T) {
			h := newHarness(t, stage, mgl64.Vec3{x, 0, 0})
			h.key(true, "W")
			h.steps(120)

			face := -2.5 + cfg.Movement.Radius
			if z := h.player().Position.Z(); z < face-1e-9 {
				t.Errorf("z = %v, passed the wall face at %v", z, face)
			}
		})
	}
}

func TestFacingFollowsMovement(t *testing.T) {
	t.Run("third person turns", func(t *testing.T) {
		h := newHarness(t, openStage(), mgl64.Vec3{})
		h.key(true, "D")
		h.steps(120)
		if got := h.player().Rotation; math.Abs(got+math.Pi/2) > 1e-3 {
			t.Errorf("rotation = %v, want %v", got, -math.Pi/2)
		}
	})

	t.Run("first person keeps rotation", func(t *testing.T) {
		h := newHarness(t, openStage(), mgl64.Vec3{})
		h.camera().Mode = cfg.CameraFirstPerson
		h.key(true, "D")
		h.steps(60)
		if got := h.player().Rotation; got != 0 {
			t.Errorf("rotation = %v, want unchanged 0", got)
		}
	})
}

func TestPlayerResetEvent(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{})
	h.key(true, "W")
	h.steps(30)

	spawn := mgl64.Vec3{3, 0, 4}
	components.PlayerReset.Publish(h.ecs.World, components.PlayerResetEvent{Spawn: spawn})
	h.key(false, "W")
	h.step(0)

	p := h.player()
	if p.Position != spawn || p.Velocity != (mgl64.Vec3{}) {
		t.Errorf("after reset: pos %v vel %v", p.Position, p.Velocity)
	}
	col, _ := GetCollision(h.ecs)
	body, ok := col.World.Get("player")
	if !ok || body.Position.X() != 3 || body.Position.Z() != 4 {
		t.Errorf("registry body = %+v, %v", body, ok)
	}
}
