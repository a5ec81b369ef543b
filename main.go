package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/wayfarer/assets"
	"github.com/automoto/wayfarer/components"
	"github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/core"
	"github.com/automoto/wayfarer/scenes"
	"github.com/automoto/wayfarer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	tuning  string
	watcher *config.TuningWatcher
}

func NewGame(opts core.Options, stageID, tuningPath string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewExploreScene(opts, stageID),
		tuning: tuningPath,
	}

	if tuningPath != "" {
		if err := config.LoadTuning(tuningPath); err != nil {
			log.Printf("Warning: Could not load tuning %s: %v", tuningPath, err)
		}
		w, err := config.WatchTuning(tuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning %s: %v", tuningPath, err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	return nil
}

// reloadTuning applies pending tuning file changes between frames.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := config.LoadTuning(path); err != nil {
				log.Printf("Warning: Rejected tuning %s: %v", path, err)
				continue
			}
			log.Printf("Reloaded tuning %s", path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Warning: Tuning watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func (g *Game) Close() {
	g.scene.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func main() {
	stage := flag.String("stage", "meadow", "Stage to start on")
	tuning := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	overlay := flag.Bool("overlay", false, "Show the debug overlay")
	avatar := flag.String("avatar", "default", "Bundled avatar manifest")
	stagesDir := flag.String("stages", "", "Directory of stage files that override the bundled ones")
	flag.Parse()

	config.Debug.ShowOverlay = *overlay
	config.Debug.StageID = *stage

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Wayfarer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	opts := core.Options{Stages: assets.StageProvider()}
	if *stagesDir != "" {
		opts.Stages = assets.DirStageProvider(os.DirFS(*stagesDir), ".")
	}

	src := assets.AvatarSource(*avatar)
	if man, err := src.Manifest(); err != nil {
		log.Printf("Warning: Could not read avatar %s: %v", *avatar, err)
	} else {
		opts.Clips = src
		opts.Durations = man.Durations
		opts.Avatar = components.AvatarData{Scale: man.Scale, HeightOffset: man.HeightOffset}
	}

	prefs, err := systems.OpenPrefs("wayfarer")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		opts.Prefs = prefs
	}

	game := NewGame(opts, *stage, *tuning)
	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
