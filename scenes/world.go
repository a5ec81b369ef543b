package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/wayfarer/assets"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ExploreScene runs the avatar simulation on one stage at a time.
type ExploreScene struct {
	sim     *core.Simulation
	devices *Devices
	opts    core.Options
	stages  []string
	stage   int
	clip    int
	once    sync.Once
	err     error
}

// NewExploreScene creates a scene that starts on stageID.
func NewExploreScene(opts core.Options, stageID string) *ExploreScene {
	es := &ExploreScene{opts: opts, devices: NewDevices()}

	names, err := assets.StageNames()
	if err != nil {
		log.Printf("Warning: Could not list stages: %v", err)
	}
	es.stages = names
	for i, name := range names {
		if name == stageID {
			es.stage = i
		}
	}
	if len(es.stages) == 0 || es.stages[es.stage] != stageID {
		es.stages = append([]string{stageID}, es.stages...)
		es.stage = 0
	}
	return es
}

func (es *ExploreScene) Update() {
	es.once.Do(es.configure)
	if es.err != nil {
		return
	}

	es.devices.Poll(es.sim, es.sim.Camera().PointerLocked)
	es.handleShellKeys()

	es.sim.Update(1 / float64(ebiten.TPS()))

	for _, req := range es.sim.TakePauseRequests() {
		if req.Paused {
			log.Println("Paused")
		} else {
			log.Println("Resumed")
		}
	}
}

// handleShellKeys covers actions that belong to the shell rather than the
// simulation: stage switching, reset and manual clip selection.
func (es *ExploreScene) handleShellKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		es.sim.RequestReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && len(es.stages) > 1 {
		es.stage = (es.stage + 1) % len(es.stages)
		if err := es.sim.LoadStage(es.stages[es.stage]); err != nil {
			log.Printf("Warning: Could not load stage %s: %v", es.stages[es.stage], err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if p, ok := es.sim.Player(); ok {
			clips := playerClips(es.sim)
			if len(clips) > 0 {
				es.clip = (es.clip + 1) % len(clips)
				es.sim.SelectAnimation(clips[es.clip])
				log.Printf("Manual animation %s (was %s)", clips[es.clip], p.Animation.Clip)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.ShowOverlay = !cfg.Debug.ShowOverlay
	}
}

func (es *ExploreScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if es.sim == nil || es.sim.ECS() == nil {
		return
	}
	es.sim.ECS().Draw(screen)
}

// Close tears the simulation down.
func (es *ExploreScene) Close() {
	if es.sim != nil {
		es.sim.Teardown()
	}
}

func (es *ExploreScene) configure() {
	es.sim = core.New(es.opts)
	if err := es.sim.Init(es.stages[es.stage]); err != nil {
		es.err = err
		log.Printf("Warning: Could not start stage %s: %v", es.stages[es.stage], err)
		return
	}

	// Add renderers
	e := es.sim.ECS()
	e.AddRenderer(cfg.Default, DrawStage)
	e.AddRenderer(cfg.Default, DrawCollectibles)
	e.AddRenderer(cfg.Default, DrawPlayer)
	e.AddRenderer(cfg.Default, DrawDebug)
	e.AddRenderer(cfg.Default, DrawPause)
}
