package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/core"
	"github.com/automoto/wayfarer/shared/collision"
	"github.com/automoto/wayfarer/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	pixelsPerUnit = 16.0
	lookDistance  = 50.0
)

var (
	colorBox    = color.RGBA{120, 110, 100, 255}
	colorSphere = color.RGBA{60, 140, 70, 255}
	colorItem   = color.RGBA{240, 200, 40, 255}
	colorPlayer = color.RGBA{40, 110, 240, 255}
	colorCamera = color.RGBA{200, 200, 200, 255}
	colorPause  = color.RGBA{0, 0, 0, 160}
)

// view maps world XZ onto the screen, top-down and centered on the player.
type view struct {
	originX, originZ float64
	cx, cy           float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	player, ok := systems.GetPlayer(e)
	if !ok {
		return view{}, false
	}
	return view{
		originX: player.Position.X(),
		originZ: player.Position.Z(),
		cx:      float64(screen.Bounds().Dx()) / 2,
		cy:      float64(screen.Bounds().Dy()) / 2,
	}, true
}

func (v view) point(p mgl64.Vec3) (float32, float32) {
	return float32(v.cx + (p.X()-v.originX)*pixelsPerUnit), float32(v.cy + (p.Z()-v.originZ)*pixelsPerUnit)
}

// DrawStage draws the stage's static geometry.
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	col, ok := systems.GetCollision(e)
	if !ok || col.Stage == nil {
		return
	}

	for _, prim := range col.Stage.Primitives() {
		x, y := v.point(prim.Position)
		switch prim.Shape {
		case collision.ShapeSphere:
			vector.FillCircle(screen, x, y, float32(prim.Radius()*pixelsPerUnit), colorSphere, true)
		case collision.ShapeBox:
			w := float32(prim.Size.X() * 2 * pixelsPerUnit)
			h := float32(prim.Size.Z() * 2 * pixelsPerUnit)
			vector.FillRect(screen, x-w/2, y-h/2, w, h, colorBox, false)
		}
	}
}

// DrawCollectibles draws the items not yet collected.
func DrawCollectibles(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	components.Collectible.Each(e.World, func(entry *donburi.Entry) {
		item := components.Collectible.Get(entry)
		if item.Collected {
			return
		}
		x, y := v.point(item.Position)
		vector.FillCircle(screen, x, y, float32(cfg.Collectible.Radius*pixelsPerUnit), colorItem, true)
	})
}

// DrawPlayer draws the player's body, facing and the camera's ground position.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	player, _ := systems.GetPlayer(e)
	x, y := v.point(player.Position)
	r := float32(cfg.Movement.Radius * pixelsPerUnit)
	vector.FillCircle(screen, x, y, r, colorPlayer, true)

	facing := player.Position.Add(mgl64.Vec3{-math.Sin(player.Rotation), 0, -math.Cos(player.Rotation)})
	fx, fy := v.point(facing)
	vector.StrokeLine(screen, x, y, fx, fy, 2, colorPlayer, true)

	if entry, ok := components.CameraRig.First(e.World); ok {
		rig := components.CameraRig.Get(entry)
		if rig.Initialized {
			camX, camY := v.point(rig.Position)
			vector.StrokeLine(screen, x, y, camX, camY, 1, colorCamera, true)
		}
	}
}

// DrawDebug prints the simulation state when the overlay is enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	player, ok := systems.GetPlayer(e)
	if !ok {
		return
	}
	col, ok := systems.GetCollision(e)
	if !ok {
		return
	}
	camera := systems.GetOrCreateCamera(e)
	msg := fmt.Sprintf(
		"stage %s  tps %.0f\npos %.2f %.2f %.2f\nvel %.2f %.2f %.2f  ground %v\nanim %s %q\ncamera %s zoom %.2f locked %v\n%s",
		col.StageID, ebiten.ActualTPS(),
		player.Position.X(), player.Position.Y(), player.Position.Z(),
		player.Velocity.X(), player.Velocity.Y(), player.Velocity.Z(), player.OnGround,
		player.Animation.Category, player.Animation.Clip,
		camera.Mode, camera.Zoom, camera.PointerLocked,
		"WASD move  Shift run  Space jump  V camera  M clip  R reset  N stage  F3 overlay",
	)
	if col.World != nil {
		msg += fmt.Sprintf("\ngrid %.1fm  nearby %d", col.World.CellSize(), len(systems.NearbyObjects(e)))
	}
	if hit, ok := systems.LookHit(e, lookDistance); ok {
		msg += fmt.Sprintf("\nlooking at %s %.1fm", hit.ID, hit.Distance)
	}
	ebitenutil.DebugPrint(screen, msg)
}

// DrawPause dims the scene while the simulation is paused.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetOrCreatePause(e).IsPaused {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), colorPause, false)
	ebitenutil.DebugPrintAt(screen, "Paused - Esc to resume", w/2-66, h/2)
}

// playerClips returns the clip names the player's avatar offers.
func playerClips(sim *core.Simulation) []string {
	entry, ok := systems.GetPlayerEntry(sim.ECS())
	if !ok {
		return nil
	}
	return components.Animation.Get(entry).Clips
}
