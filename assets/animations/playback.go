package animations

import (
	"github.com/automoto/wayfarer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Playback is one clip's playhead and blend weight.
type Playback struct {
	Clip     string
	Loop     config.LoopMode
	Duration float64 // Clip length in seconds
	Weight   float64

	time     float64
	looped   bool
	finished bool
	fade     *gween.Tween
}

// NewPlayback starts clip at the beginning with the given weight.
func NewPlayback(clip string, loop config.LoopMode, duration, weight float64) *Playback {
	if duration <= 0 {
		duration = 1
	}
	return &Playback{
		Clip:     clip,
		Loop:     loop,
		Duration: duration,
		Weight:   weight,
	}
}

// FadeTo tweens the weight to target over seconds.
func (p *Playback) FadeTo(target, seconds float64) {
	if seconds <= 0 {
		p.Weight = target
		p.fade = nil
		return
	}
	p.fade = gween.New(float32(p.Weight), float32(target), float32(seconds), ease.Linear)
}

// Fading reports whether a weight tween is still running.
func (p *Playback) Fading() bool {
	return p.fade != nil
}

func (p *Playback) Update(dt float64) {
	if p.fade != nil {
		w, done := p.fade.Update(float32(dt))
		p.Weight = float64(w)
		if done {
			p.fade = nil
		}
	}

	if p.finished {
		return
	}
	p.time += dt
	if p.time < p.Duration {
		return
	}
	p.looped = true
	if p.Loop == config.LoopOnce {
		// Stay on last frame
		p.time = p.Duration
		p.finished = true
		return
	}
	for p.time >= p.Duration {
		p.time -= p.Duration
	}
}

// Time is the playhead position in seconds.
func (p *Playback) Time() float64 {
	return p.time
}

// Looped reports whether the clip has reached its end at least once.
func (p *Playback) Looped() bool {
	return p.looped
}

// Finished reports whether a loop-once clip is clamped on its last frame.
func (p *Playback) Finished() bool {
	return p.finished
}

// Restart rewinds the playhead and clears the end-of-clip state.
func (p *Playback) Restart() {
	p.time = 0
	p.looped = false
	p.finished = false
}

// Mixer crossfades between the current clip and the one it replaced.
type Mixer struct {
	Current  *Playback
	Previous *Playback
	Fade     float64

	durations map[string]float64
}

func NewMixer(fade float64) *Mixer {
	return &Mixer{Fade: fade}
}

// SetDuration records the length of a clip for future playbacks.
func (m *Mixer) SetDuration(clip string, seconds float64) {
	if m.durations == nil {
		m.durations = make(map[string]float64)
	}
	m.durations[clip] = seconds
}

// Play switches to clip, fading the current clip out and the new one in.
// Playing the clip that is already current only updates its loop mode; a
// clip clamped by a loop-once pass starts over. An empty clip fades
// everything out.
func (m *Mixer) Play(clip string, loop config.LoopMode) {
	if m.Current != nil && m.Current.Clip == clip {
		if m.Current.Loop != loop {
			m.Current.Loop = loop
			if m.Current.Finished() {
				m.Current.Restart()
			}
		}
		return
	}

	m.Previous = m.Current
	if m.Previous != nil {
		m.Previous.FadeTo(0, m.Fade)
	}
	if clip == "" {
		m.Current = nil
		return
	}

	start := 0.0
	if m.Previous == nil {
		start = 1
	}
	m.Current = NewPlayback(clip, loop, m.durations[clip], start)
	if start < 1 {
		m.Current.FadeTo(1, m.Fade)
	}
}

func (m *Mixer) Update(dt float64) {
	if m.Current != nil {
		m.Current.Update(dt)
	}
	if m.Previous != nil {
		m.Previous.Update(dt)
		if !m.Previous.Fading() {
			m.Previous = nil
		}
	}
}

// Clip returns the current clip name, or "" when nothing plays.
func (m *Mixer) Clip() string {
	if m.Current == nil {
		return ""
	}
	return m.Current.Clip
}

// Stop drops both playbacks immediately.
func (m *Mixer) Stop() {
	m.Current = nil
	m.Previous = nil
}
