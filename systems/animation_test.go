package systems

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automoto/wayfarer/assets"
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/go-gl/mathgl/mgl64"
)

var avatarClips = []string{"Idle_02", "Walk_Forward", "Run_01", "Jump_01", "Crouch_Walk", "Wave"}

func animatedHarness(t *testing.T, spawn mgl64.Vec3) (*harness, *components.AnimationData) {
	h := newHarness(t, openStage(), spawn)
	entry, _ := GetPlayerEntry(h.ecs)
	anim := components.Animation.Get(entry)
	anim.Clips = avatarClips
	anim.Dirty = true
	return h, anim
}

func TestAnimationFollowsMovement(t *testing.T) {
	h, anim := animatedHarness(t, mgl64.Vec3{})

	h.step(frameDT)
	if got := h.player().Animation; got.Category != cfg.CategoryIdle || got.Clip != "Idle_02" {
		t.Fatalf("idle animation = %+v", got)
	}

	h.key(true, "W")
	h.step(frameDT)
	if got := h.player().Animation.Clip; got != "Walk_Forward" {
		t.Errorf("walking clip = %q", got)
	}

	h.key(true, "ShiftLeft")
	h.step(frameDT)
	if got := h.player().Animation.Clip; got != "Run_01" {
		t.Errorf("running clip = %q", got)
	}

	h.key(true, "Space")
	h.steps(2)
	if got := h.player().Animation; got.Category != cfg.CategoryJumping || got.Clip != "Jump_01" {
		t.Errorf("jumping animation = %+v", got)
	}
	if anim.Mixer.Current.Loop != cfg.LoopOnce {
		t.Error("jump clip should play once")
	}
	if anim.Mixer.Previous == nil {
		t.Error("expected a crossfade from the running clip")
	}
}

func TestManualAnimationOverride(t *testing.T) {
	h, _ := animatedHarness(t, mgl64.Vec3{})
	h.key(true, "W")
	h.step(frameDT)

	components.ManualAnimationSelect.Publish(h.ecs.World, components.ManualAnimationSelectEvent{Clip: "Wave"})
	h.steps(10)
	if got := h.player().Animation.Clip; got != "Wave" {
		t.Fatalf("clip = %q, want manual Wave while input is unchanged", got)
	}

	components.ManualAnimationSelect.Publish(h.ecs.World, components.ManualAnimationSelectEvent{Clip: "Moonwalk"})
	h.step(frameDT)
	if got := h.player().Animation.Clip; got != "Wave" {
		t.Errorf("unknown clip replaced manual selection: %q", got)
	}

	h.key(false, "W")
	h.step(frameDT)
	h.key(true, "W")
	h.step(frameDT)
	if got := h.player().Animation.Clip; got != "Walk_Forward" {
		t.Errorf("clip = %q, want automatic control after new input", got)
	}
}

func TestClipLoadResults(t *testing.T) {
	t.Run("success replaces list", func(t *testing.T) {
		h, anim := animatedHarness(t, mgl64.Vec3{})
		h.step(frameDT)

		anim.Pending = assets.LoadClips(context.Background(), assets.StaticClips{"idle", "walk"}, time.Second)
		if _, err := anim.Pending.Wait(); err != nil {
			t.Fatal(err)
		}
		h.step(frameDT)

		if anim.Pending != nil || len(anim.Clips) != 2 {
			t.Fatalf("clips = %v pending = %v", anim.Clips, anim.Pending)
		}
		if got := h.player().Animation.Clip; got != "idle" {
			t.Errorf("clip = %q, want re-resolved idle", got)
		}
	})

	t.Run("failure keeps list", func(t *testing.T) {
		h, anim := animatedHarness(t, mgl64.Vec3{})
		anim.Pending = assets.LoadClips(context.Background(), failingClips{}, time.Second)
		_, _ = anim.Pending.Wait()
		h.step(frameDT)

		if anim.Pending != nil || len(anim.Clips) != len(avatarClips) {
			t.Errorf("clips = %v, want previous list kept", anim.Clips)
		}
		if got := h.player().Animation.Clip; got != "Idle_02" {
			t.Errorf("clip = %q", got)
		}
	})
}

func TestNoClipsResolvesEmpty(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{})
	h.step(frameDT)
	if got := h.player().Animation; got.Clip != "" || got.Category != cfg.CategoryIdle {
		t.Errorf("animation = %+v, want idle with no clip", got)
	}
}

type failingClips struct{}

func (failingClips) ClipNames(context.Context) ([]string, error) {
	return nil, errors.New("metadata unavailable")
}

func TestIdleKeepsLoopingAfterJumpFallback(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{})
	entry, _ := GetPlayerEntry(h.ecs)
	anim := components.Animation.Get(entry)
	anim.Clips = []string{"Idle_02", "Run_01"}
	anim.Mixer.SetDuration("Idle_02", 0.5)
	anim.Dirty = true
	h.step(frameDT)

	h.key(true, "Space")
	h.step(frameDT)
	h.key(false, "Space")
	if h.player().OnGround {
		t.Fatal("jump did not leave the ground")
	}
	if got := h.player().Animation; got.Category != cfg.CategoryJumping || got.Clip != "Idle_02" {
		t.Fatalf("airborne animation = %+v, want jumping falling back to Idle_02", got)
	}

	for i := 0; i < 300 && !h.player().OnGround; i++ {
		h.step(frameDT)
	}
	if !h.player().OnGround {
		t.Fatal("never landed")
	}
	h.steps(40)

	current := anim.Mixer.Current
	if current.Loop != cfg.LoopRepeat || current.Finished() {
		t.Fatalf("idle loop=%v finished=%v, want repeating", current.Loop, current.Finished())
	}
	before := current.Time()
	h.steps(3)
	if current.Time() == before {
		t.Errorf("idle playhead stuck at %v", before)
	}
}
