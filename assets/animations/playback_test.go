package animations

import (
	"math"
	"testing"

	"github.com/automoto/wayfarer/config"
)

func TestPlaybackLoopOnceClamps(t *testing.T) {
	p := NewPlayback("Jump", config.LoopOnce, 0.5, 1)
	for i := 0; i < 60; i++ {
		p.Update(1.0 / 60)
	}
	if !p.Finished() || p.Time() != 0.5 {
		t.Errorf("finished=%v time=%v, want clamped at 0.5", p.Finished(), p.Time())
	}
}

func TestPlaybackRepeatWraps(t *testing.T) {
	p := NewPlayback("Walk", config.LoopRepeat, 1, 1)
	p.Update(0.75)
	p.Update(0.5)
	if p.Finished() {
		t.Error("repeating clip finished")
	}
	if !p.Looped() || math.Abs(p.Time()-0.25) > 1e-9 {
		t.Errorf("looped=%v time=%v, want wrapped to 0.25", p.Looped(), p.Time())
	}
}

func TestMixerCrossfade(t *testing.T) {
	m := NewMixer(0.2)
	m.Play("Idle", config.LoopRepeat)
	if m.Current.Weight != 1 || m.Previous != nil {
		t.Fatalf("first clip should start at full weight")
	}

	m.Play("Walk", config.LoopRepeat)
	if m.Previous == nil || m.Previous.Clip != "Idle" || m.Current.Weight != 0 {
		t.Fatalf("crossfade not started: %+v / %+v", m.Current, m.Previous)
	}

	m.Update(0.1)
	if math.Abs(m.Current.Weight-0.5) > 1e-3 || math.Abs(m.Previous.Weight-0.5) > 1e-3 {
		t.Errorf("halfway weights = %v / %v", m.Current.Weight, m.Previous.Weight)
	}

	m.Update(0.15)
	if m.Current.Weight != 1 {
		t.Errorf("current weight = %v after fade", m.Current.Weight)
	}
	if m.Previous != nil {
		t.Error("previous clip kept after fade out")
	}
	if m.Clip() != "Walk" {
		t.Errorf("Clip = %q", m.Clip())
	}
}

func TestMixerSameClipIsNoop(t *testing.T) {
	m := NewMixer(0.2)
	m.Play("Idle", config.LoopRepeat)
	first := m.Current
	m.Update(0.3)
	m.Play("Idle", config.LoopRepeat)
	if m.Current != first || m.Previous != nil {
		t.Error("replaying the current clip restarted it")
	}
}

func TestMixerSameClipLoopChangeResumes(t *testing.T) {
	m := NewMixer(0.2)
	m.SetDuration("Idle", 0.5)
	m.Play("Idle", config.LoopOnce)
	m.Update(0.6)
	if !m.Current.Finished() {
		t.Fatal("loop-once clip should clamp at its end")
	}

	m.Play("Idle", config.LoopRepeat)
	if m.Current.Finished() || m.Current.Time() != 0 {
		t.Fatalf("finished=%v time=%v, want rewound", m.Current.Finished(), m.Current.Time())
	}
	m.Update(0.2)
	m.Update(0.4)
	if got := m.Current.Time(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("time = %v, want wrapped to 0.1", got)
	}
}
